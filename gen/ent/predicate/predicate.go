// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FieldMapping is the predicate function for fieldmapping builders.
type FieldMapping func(*sql.Selector)

// GeneratedFile is the predicate function for generatedfile builders.
type GeneratedFile func(*sql.Selector)

// Marketplace is the predicate function for marketplace builders.
type Marketplace func(*sql.Selector)

// MarketplaceField is the predicate function for marketplacefield builders.
type MarketplaceField func(*sql.Selector)

// SessionRow is the predicate function for sessionrow builders.
type SessionRow func(*sql.Selector)

// UploadSession is the predicate function for uploadsession builders.
type UploadSession func(*sql.Selector)
