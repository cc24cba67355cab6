// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFieldMapping     = "FieldMapping"
	TypeGeneratedFile    = "GeneratedFile"
	TypeMarketplace      = "Marketplace"
	TypeMarketplaceField = "MarketplaceField"
	TypeSessionRow       = "SessionRow"
	TypeUploadSession    = "UploadSession"
)

// FieldMappingMutation represents an operation that mutates the FieldMapping nodes in the graph.
type FieldMappingMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	user_column    *string
	field_id       *uuid.UUID
	field_name     *string
	origin         *string
	confidence     *float32
	addconfidence  *float32
	position       *int
	addposition    *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*FieldMapping, error)
	predicates     []predicate.FieldMapping
}

var _ ent.Mutation = (*FieldMappingMutation)(nil)

// fieldmappingOption allows management of the mutation configuration using functional options.
type fieldmappingOption func(*FieldMappingMutation)

// newFieldMappingMutation creates new mutation for the FieldMapping entity.
func newFieldMappingMutation(c config, op Op, opts ...fieldmappingOption) *FieldMappingMutation {
	m := &FieldMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldMappingID sets the ID field of the mutation.
func withFieldMappingID(id uuid.UUID) fieldmappingOption {
	return func(m *FieldMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldMapping
		)
		m.oldValue = func(ctx context.Context) (*FieldMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldMapping sets the old FieldMapping of the mutation.
func withFieldMapping(node *FieldMapping) fieldmappingOption {
	return func(m *FieldMappingMutation) {
		m.oldValue = func(context.Context) (*FieldMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldMapping entities.
func (m *FieldMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *FieldMappingMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *FieldMappingMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *FieldMappingMutation) ResetSessionID() {
	m.session = nil
}

// SetUserColumn sets the "user_column" field.
func (m *FieldMappingMutation) SetUserColumn(s string) {
	m.user_column = &s
}

// UserColumn returns the value of the "user_column" field in the mutation.
func (m *FieldMappingMutation) UserColumn() (r string, exists bool) {
	v := m.user_column
	if v == nil {
		return
	}
	return *v, true
}

// OldUserColumn returns the old "user_column" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldUserColumn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserColumn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserColumn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserColumn: %w", err)
	}
	return oldValue.UserColumn, nil
}

// ResetUserColumn resets all changes to the "user_column" field.
func (m *FieldMappingMutation) ResetUserColumn() {
	m.user_column = nil
}

// SetFieldID sets the "field_id" field.
func (m *FieldMappingMutation) SetFieldID(u uuid.UUID) {
	m.field_id = &u
}

// FieldID returns the value of the "field_id" field in the mutation.
func (m *FieldMappingMutation) FieldID() (r uuid.UUID, exists bool) {
	v := m.field_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldID returns the old "field_id" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldFieldID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldID: %w", err)
	}
	return oldValue.FieldID, nil
}

// ClearFieldID clears the value of the "field_id" field.
func (m *FieldMappingMutation) ClearFieldID() {
	m.field_id = nil
	m.clearedFields[fieldmapping.FieldFieldID] = struct{}{}
}

// FieldIDCleared returns if the "field_id" field was cleared in this mutation.
func (m *FieldMappingMutation) FieldIDCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldFieldID]
	return ok
}

// ResetFieldID resets all changes to the "field_id" field.
func (m *FieldMappingMutation) ResetFieldID() {
	m.field_id = nil
	delete(m.clearedFields, fieldmapping.FieldFieldID)
}

// SetFieldName sets the "field_name" field.
func (m *FieldMappingMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *FieldMappingMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *FieldMappingMutation) ResetFieldName() {
	m.field_name = nil
}

// SetOrigin sets the "origin" field.
func (m *FieldMappingMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *FieldMappingMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *FieldMappingMutation) ResetOrigin() {
	m.origin = nil
}

// SetConfidence sets the "confidence" field.
func (m *FieldMappingMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FieldMappingMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FieldMappingMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FieldMappingMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *FieldMappingMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[fieldmapping.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *FieldMappingMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FieldMappingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, fieldmapping.FieldConfidence)
}

// SetPosition sets the "position" field.
func (m *FieldMappingMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *FieldMappingMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *FieldMappingMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *FieldMappingMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *FieldMappingMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (m *FieldMappingMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[fieldmapping.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the UploadSession entity was cleared.
func (m *FieldMappingMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *FieldMappingMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *FieldMappingMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the FieldMappingMutation builder.
func (m *FieldMappingMutation) Where(ps ...predicate.FieldMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldMapping).
func (m *FieldMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldMappingMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, fieldmapping.FieldSessionID)
	}
	if m.user_column != nil {
		fields = append(fields, fieldmapping.FieldUserColumn)
	}
	if m.field_id != nil {
		fields = append(fields, fieldmapping.FieldFieldID)
	}
	if m.field_name != nil {
		fields = append(fields, fieldmapping.FieldFieldName)
	}
	if m.origin != nil {
		fields = append(fields, fieldmapping.FieldOrigin)
	}
	if m.confidence != nil {
		fields = append(fields, fieldmapping.FieldConfidence)
	}
	if m.position != nil {
		fields = append(fields, fieldmapping.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, fieldmapping.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldmapping.FieldSessionID:
		return m.SessionID()
	case fieldmapping.FieldUserColumn:
		return m.UserColumn()
	case fieldmapping.FieldFieldID:
		return m.FieldID()
	case fieldmapping.FieldFieldName:
		return m.FieldName()
	case fieldmapping.FieldOrigin:
		return m.Origin()
	case fieldmapping.FieldConfidence:
		return m.Confidence()
	case fieldmapping.FieldPosition:
		return m.Position()
	case fieldmapping.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldmapping.FieldSessionID:
		return m.OldSessionID(ctx)
	case fieldmapping.FieldUserColumn:
		return m.OldUserColumn(ctx)
	case fieldmapping.FieldFieldID:
		return m.OldFieldID(ctx)
	case fieldmapping.FieldFieldName:
		return m.OldFieldName(ctx)
	case fieldmapping.FieldOrigin:
		return m.OldOrigin(ctx)
	case fieldmapping.FieldConfidence:
		return m.OldConfidence(ctx)
	case fieldmapping.FieldPosition:
		return m.OldPosition(ctx)
	case fieldmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldmapping.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case fieldmapping.FieldUserColumn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserColumn(v)
		return nil
	case fieldmapping.FieldFieldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldID(v)
		return nil
	case fieldmapping.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case fieldmapping.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case fieldmapping.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case fieldmapping.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case fieldmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldMappingMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, fieldmapping.FieldConfidence)
	}
	if m.addposition != nil {
		fields = append(fields, fieldmapping.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fieldmapping.FieldConfidence:
		return m.AddedConfidence()
	case fieldmapping.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fieldmapping.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case fieldmapping.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown FieldMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldmapping.FieldFieldID) {
		fields = append(fields, fieldmapping.FieldFieldID)
	}
	if m.FieldCleared(fieldmapping.FieldConfidence) {
		fields = append(fields, fieldmapping.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldMappingMutation) ClearField(name string) error {
	switch name {
	case fieldmapping.FieldFieldID:
		m.ClearFieldID()
		return nil
	case fieldmapping.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldMappingMutation) ResetField(name string) error {
	switch name {
	case fieldmapping.FieldSessionID:
		m.ResetSessionID()
		return nil
	case fieldmapping.FieldUserColumn:
		m.ResetUserColumn()
		return nil
	case fieldmapping.FieldFieldID:
		m.ResetFieldID()
		return nil
	case fieldmapping.FieldFieldName:
		m.ResetFieldName()
		return nil
	case fieldmapping.FieldOrigin:
		m.ResetOrigin()
		return nil
	case fieldmapping.FieldConfidence:
		m.ResetConfidence()
		return nil
	case fieldmapping.FieldPosition:
		m.ResetPosition()
		return nil
	case fieldmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, fieldmapping.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fieldmapping.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, fieldmapping.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case fieldmapping.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldMappingMutation) ClearEdge(name string) error {
	switch name {
	case fieldmapping.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldMappingMutation) ResetEdge(name string) error {
	switch name {
	case fieldmapping.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping edge %s", name)
}

// GeneratedFileMutation represents an operation that mutates the GeneratedFile nodes in the graph.
type GeneratedFileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	file_path      *string
	output_format  *string
	row_count      *int
	addrow_count   *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*GeneratedFile, error)
	predicates     []predicate.GeneratedFile
}

var _ ent.Mutation = (*GeneratedFileMutation)(nil)

// generatedfileOption allows management of the mutation configuration using functional options.
type generatedfileOption func(*GeneratedFileMutation)

// newGeneratedFileMutation creates new mutation for the GeneratedFile entity.
func newGeneratedFileMutation(c config, op Op, opts ...generatedfileOption) *GeneratedFileMutation {
	m := &GeneratedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneratedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneratedFileID sets the ID field of the mutation.
func withGeneratedFileID(id uuid.UUID) generatedfileOption {
	return func(m *GeneratedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneratedFile
		)
		m.oldValue = func(ctx context.Context) (*GeneratedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneratedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneratedFile sets the old GeneratedFile of the mutation.
func withGeneratedFile(node *GeneratedFile) generatedfileOption {
	return func(m *GeneratedFileMutation) {
		m.oldValue = func(context.Context) (*GeneratedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneratedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneratedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeneratedFile entities.
func (m *GeneratedFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneratedFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneratedFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneratedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *GeneratedFileMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GeneratedFileMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GeneratedFile entity.
// If the GeneratedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFileMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GeneratedFileMutation) ResetSessionID() {
	m.session = nil
}

// SetFilePath sets the "file_path" field.
func (m *GeneratedFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *GeneratedFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the GeneratedFile entity.
// If the GeneratedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *GeneratedFileMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[generatedfile.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *GeneratedFileMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[generatedfile.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *GeneratedFileMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, generatedfile.FieldFilePath)
}

// SetOutputFormat sets the "output_format" field.
func (m *GeneratedFileMutation) SetOutputFormat(s string) {
	m.output_format = &s
}

// OutputFormat returns the value of the "output_format" field in the mutation.
func (m *GeneratedFileMutation) OutputFormat() (r string, exists bool) {
	v := m.output_format
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFormat returns the old "output_format" field's value of the GeneratedFile entity.
// If the GeneratedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFileMutation) OldOutputFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFormat: %w", err)
	}
	return oldValue.OutputFormat, nil
}

// ResetOutputFormat resets all changes to the "output_format" field.
func (m *GeneratedFileMutation) ResetOutputFormat() {
	m.output_format = nil
}

// SetRowCount sets the "row_count" field.
func (m *GeneratedFileMutation) SetRowCount(i int) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *GeneratedFileMutation) RowCount() (r int, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the GeneratedFile entity.
// If the GeneratedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFileMutation) OldRowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *GeneratedFileMutation) AddRowCount(i int) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *GeneratedFileMutation) AddedRowCount() (r int, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *GeneratedFileMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneratedFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneratedFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneratedFile entity.
// If the GeneratedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneratedFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (m *GeneratedFileMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[generatedfile.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the UploadSession entity was cleared.
func (m *GeneratedFileMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *GeneratedFileMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *GeneratedFileMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the GeneratedFileMutation builder.
func (m *GeneratedFileMutation) Where(ps ...predicate.GeneratedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneratedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneratedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneratedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneratedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneratedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneratedFile).
func (m *GeneratedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneratedFileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, generatedfile.FieldSessionID)
	}
	if m.file_path != nil {
		fields = append(fields, generatedfile.FieldFilePath)
	}
	if m.output_format != nil {
		fields = append(fields, generatedfile.FieldOutputFormat)
	}
	if m.row_count != nil {
		fields = append(fields, generatedfile.FieldRowCount)
	}
	if m.created_at != nil {
		fields = append(fields, generatedfile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneratedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generatedfile.FieldSessionID:
		return m.SessionID()
	case generatedfile.FieldFilePath:
		return m.FilePath()
	case generatedfile.FieldOutputFormat:
		return m.OutputFormat()
	case generatedfile.FieldRowCount:
		return m.RowCount()
	case generatedfile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneratedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generatedfile.FieldSessionID:
		return m.OldSessionID(ctx)
	case generatedfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case generatedfile.FieldOutputFormat:
		return m.OldOutputFormat(ctx)
	case generatedfile.FieldRowCount:
		return m.OldRowCount(ctx)
	case generatedfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeneratedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generatedfile.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case generatedfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case generatedfile.FieldOutputFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFormat(v)
		return nil
	case generatedfile.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case generatedfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneratedFileMutation) AddedFields() []string {
	var fields []string
	if m.addrow_count != nil {
		fields = append(fields, generatedfile.FieldRowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneratedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generatedfile.FieldRowCount:
		return m.AddedRowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generatedfile.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneratedFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generatedfile.FieldFilePath) {
		fields = append(fields, generatedfile.FieldFilePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneratedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneratedFileMutation) ClearField(name string) error {
	switch name {
	case generatedfile.FieldFilePath:
		m.ClearFilePath()
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneratedFileMutation) ResetField(name string) error {
	switch name {
	case generatedfile.FieldSessionID:
		m.ResetSessionID()
		return nil
	case generatedfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case generatedfile.FieldOutputFormat:
		m.ResetOutputFormat()
		return nil
	case generatedfile.FieldRowCount:
		m.ResetRowCount()
		return nil
	case generatedfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneratedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, generatedfile.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneratedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generatedfile.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneratedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneratedFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneratedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, generatedfile.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneratedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case generatedfile.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneratedFileMutation) ClearEdge(name string) error {
	switch name {
	case generatedfile.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneratedFileMutation) ResetEdge(name string) error {
	switch name {
	case generatedfile.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown GeneratedFile edge %s", name)
}

// MarketplaceMutation represents an operation that mutates the Marketplace nodes in the graph.
type MarketplaceMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	display_name       *string
	template_file_path *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	fields             map[uuid.UUID]struct{}
	removedfields      map[uuid.UUID]struct{}
	clearedfields      bool
	sessions           map[uuid.UUID]struct{}
	removedsessions    map[uuid.UUID]struct{}
	clearedsessions    bool
	done               bool
	oldValue           func(context.Context) (*Marketplace, error)
	predicates         []predicate.Marketplace
}

var _ ent.Mutation = (*MarketplaceMutation)(nil)

// marketplaceOption allows management of the mutation configuration using functional options.
type marketplaceOption func(*MarketplaceMutation)

// newMarketplaceMutation creates new mutation for the Marketplace entity.
func newMarketplaceMutation(c config, op Op, opts ...marketplaceOption) *MarketplaceMutation {
	m := &MarketplaceMutation{
		config:        c,
		op:            op,
		typ:           TypeMarketplace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarketplaceID sets the ID field of the mutation.
func withMarketplaceID(id uuid.UUID) marketplaceOption {
	return func(m *MarketplaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Marketplace
		)
		m.oldValue = func(ctx context.Context) (*Marketplace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Marketplace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarketplace sets the old Marketplace of the mutation.
func withMarketplace(node *Marketplace) marketplaceOption {
	return func(m *MarketplaceMutation) {
		m.oldValue = func(context.Context) (*Marketplace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarketplaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarketplaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Marketplace entities.
func (m *MarketplaceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarketplaceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarketplaceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Marketplace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *MarketplaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MarketplaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Marketplace entity.
// If the Marketplace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MarketplaceMutation) ResetName() {
	m.name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *MarketplaceMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *MarketplaceMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Marketplace entity.
// If the Marketplace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *MarketplaceMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetTemplateFilePath sets the "template_file_path" field.
func (m *MarketplaceMutation) SetTemplateFilePath(s string) {
	m.template_file_path = &s
}

// TemplateFilePath returns the value of the "template_file_path" field in the mutation.
func (m *MarketplaceMutation) TemplateFilePath() (r string, exists bool) {
	v := m.template_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateFilePath returns the old "template_file_path" field's value of the Marketplace entity.
// If the Marketplace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceMutation) OldTemplateFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateFilePath: %w", err)
	}
	return oldValue.TemplateFilePath, nil
}

// ClearTemplateFilePath clears the value of the "template_file_path" field.
func (m *MarketplaceMutation) ClearTemplateFilePath() {
	m.template_file_path = nil
	m.clearedFields[marketplace.FieldTemplateFilePath] = struct{}{}
}

// TemplateFilePathCleared returns if the "template_file_path" field was cleared in this mutation.
func (m *MarketplaceMutation) TemplateFilePathCleared() bool {
	_, ok := m.clearedFields[marketplace.FieldTemplateFilePath]
	return ok
}

// ResetTemplateFilePath resets all changes to the "template_file_path" field.
func (m *MarketplaceMutation) ResetTemplateFilePath() {
	m.template_file_path = nil
	delete(m.clearedFields, marketplace.FieldTemplateFilePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *MarketplaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarketplaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Marketplace entity.
// If the Marketplace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MarketplaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddFieldIDs adds the "fields" edge to the MarketplaceField entity by ids.
func (m *MarketplaceMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the MarketplaceField entity.
func (m *MarketplaceMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the MarketplaceField entity was cleared.
func (m *MarketplaceMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the MarketplaceField entity by IDs.
func (m *MarketplaceMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the MarketplaceField entity.
func (m *MarketplaceMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *MarketplaceMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *MarketplaceMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddSessionIDs adds the "sessions" edge to the UploadSession entity by ids.
func (m *MarketplaceMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the UploadSession entity.
func (m *MarketplaceMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the UploadSession entity was cleared.
func (m *MarketplaceMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the UploadSession entity by IDs.
func (m *MarketplaceMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the UploadSession entity.
func (m *MarketplaceMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *MarketplaceMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *MarketplaceMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the MarketplaceMutation builder.
func (m *MarketplaceMutation) Where(ps ...predicate.Marketplace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarketplaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarketplaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Marketplace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarketplaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarketplaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Marketplace).
func (m *MarketplaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarketplaceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, marketplace.FieldName)
	}
	if m.display_name != nil {
		fields = append(fields, marketplace.FieldDisplayName)
	}
	if m.template_file_path != nil {
		fields = append(fields, marketplace.FieldTemplateFilePath)
	}
	if m.created_at != nil {
		fields = append(fields, marketplace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarketplaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case marketplace.FieldName:
		return m.Name()
	case marketplace.FieldDisplayName:
		return m.DisplayName()
	case marketplace.FieldTemplateFilePath:
		return m.TemplateFilePath()
	case marketplace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarketplaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case marketplace.FieldName:
		return m.OldName(ctx)
	case marketplace.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case marketplace.FieldTemplateFilePath:
		return m.OldTemplateFilePath(ctx)
	case marketplace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Marketplace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case marketplace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case marketplace.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case marketplace.FieldTemplateFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateFilePath(v)
		return nil
	case marketplace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Marketplace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarketplaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarketplaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Marketplace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarketplaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(marketplace.FieldTemplateFilePath) {
		fields = append(fields, marketplace.FieldTemplateFilePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarketplaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarketplaceMutation) ClearField(name string) error {
	switch name {
	case marketplace.FieldTemplateFilePath:
		m.ClearTemplateFilePath()
		return nil
	}
	return fmt.Errorf("unknown Marketplace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarketplaceMutation) ResetField(name string) error {
	switch name {
	case marketplace.FieldName:
		m.ResetName()
		return nil
	case marketplace.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case marketplace.FieldTemplateFilePath:
		m.ResetTemplateFilePath()
		return nil
	case marketplace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Marketplace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarketplaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fields != nil {
		edges = append(edges, marketplace.EdgeFields)
	}
	if m.sessions != nil {
		edges = append(edges, marketplace.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarketplaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case marketplace.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case marketplace.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarketplaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfields != nil {
		edges = append(edges, marketplace.EdgeFields)
	}
	if m.removedsessions != nil {
		edges = append(edges, marketplace.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarketplaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case marketplace.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case marketplace.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarketplaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfields {
		edges = append(edges, marketplace.EdgeFields)
	}
	if m.clearedsessions {
		edges = append(edges, marketplace.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarketplaceMutation) EdgeCleared(name string) bool {
	switch name {
	case marketplace.EdgeFields:
		return m.clearedfields
	case marketplace.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarketplaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Marketplace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarketplaceMutation) ResetEdge(name string) error {
	switch name {
	case marketplace.EdgeFields:
		m.ResetFields()
		return nil
	case marketplace.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Marketplace edge %s", name)
}

// MarketplaceFieldMutation represents an operation that mutates the MarketplaceField nodes in the graph.
type MarketplaceFieldMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	field_name          *string
	display_name        *string
	is_required         *bool
	description         *string
	sample_values       *[]string
	appendsample_values []string
	field_order         *int
	addfield_order      *int
	category            *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	marketplace         *uuid.UUID
	clearedmarketplace  bool
	done                bool
	oldValue            func(context.Context) (*MarketplaceField, error)
	predicates          []predicate.MarketplaceField
}

var _ ent.Mutation = (*MarketplaceFieldMutation)(nil)

// marketplacefieldOption allows management of the mutation configuration using functional options.
type marketplacefieldOption func(*MarketplaceFieldMutation)

// newMarketplaceFieldMutation creates new mutation for the MarketplaceField entity.
func newMarketplaceFieldMutation(c config, op Op, opts ...marketplacefieldOption) *MarketplaceFieldMutation {
	m := &MarketplaceFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeMarketplaceField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarketplaceFieldID sets the ID field of the mutation.
func withMarketplaceFieldID(id uuid.UUID) marketplacefieldOption {
	return func(m *MarketplaceFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *MarketplaceField
		)
		m.oldValue = func(ctx context.Context) (*MarketplaceField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MarketplaceField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarketplaceField sets the old MarketplaceField of the mutation.
func withMarketplaceField(node *MarketplaceField) marketplacefieldOption {
	return func(m *MarketplaceFieldMutation) {
		m.oldValue = func(context.Context) (*MarketplaceField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarketplaceFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarketplaceFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MarketplaceField entities.
func (m *MarketplaceFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarketplaceFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarketplaceFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MarketplaceField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMarketplaceID sets the "marketplace_id" field.
func (m *MarketplaceFieldMutation) SetMarketplaceID(u uuid.UUID) {
	m.marketplace = &u
}

// MarketplaceID returns the value of the "marketplace_id" field in the mutation.
func (m *MarketplaceFieldMutation) MarketplaceID() (r uuid.UUID, exists bool) {
	v := m.marketplace
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceID returns the old "marketplace_id" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldMarketplaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceID: %w", err)
	}
	return oldValue.MarketplaceID, nil
}

// ResetMarketplaceID resets all changes to the "marketplace_id" field.
func (m *MarketplaceFieldMutation) ResetMarketplaceID() {
	m.marketplace = nil
}

// SetFieldName sets the "field_name" field.
func (m *MarketplaceFieldMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *MarketplaceFieldMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *MarketplaceFieldMutation) ResetFieldName() {
	m.field_name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *MarketplaceFieldMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *MarketplaceFieldMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *MarketplaceFieldMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[marketplacefield.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *MarketplaceFieldMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[marketplacefield.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *MarketplaceFieldMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, marketplacefield.FieldDisplayName)
}

// SetIsRequired sets the "is_required" field.
func (m *MarketplaceFieldMutation) SetIsRequired(b bool) {
	m.is_required = &b
}

// IsRequired returns the value of the "is_required" field in the mutation.
func (m *MarketplaceFieldMutation) IsRequired() (r bool, exists bool) {
	v := m.is_required
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRequired returns the old "is_required" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldIsRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRequired: %w", err)
	}
	return oldValue.IsRequired, nil
}

// ResetIsRequired resets all changes to the "is_required" field.
func (m *MarketplaceFieldMutation) ResetIsRequired() {
	m.is_required = nil
}

// SetDescription sets the "description" field.
func (m *MarketplaceFieldMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MarketplaceFieldMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MarketplaceFieldMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[marketplacefield.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MarketplaceFieldMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[marketplacefield.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MarketplaceFieldMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, marketplacefield.FieldDescription)
}

// SetSampleValues sets the "sample_values" field.
func (m *MarketplaceFieldMutation) SetSampleValues(s []string) {
	m.sample_values = &s
	m.appendsample_values = nil
}

// SampleValues returns the value of the "sample_values" field in the mutation.
func (m *MarketplaceFieldMutation) SampleValues() (r []string, exists bool) {
	v := m.sample_values
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleValues returns the old "sample_values" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldSampleValues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleValues: %w", err)
	}
	return oldValue.SampleValues, nil
}

// AppendSampleValues adds s to the "sample_values" field.
func (m *MarketplaceFieldMutation) AppendSampleValues(s []string) {
	m.appendsample_values = append(m.appendsample_values, s...)
}

// AppendedSampleValues returns the list of values that were appended to the "sample_values" field in this mutation.
func (m *MarketplaceFieldMutation) AppendedSampleValues() ([]string, bool) {
	if len(m.appendsample_values) == 0 {
		return nil, false
	}
	return m.appendsample_values, true
}

// ClearSampleValues clears the value of the "sample_values" field.
func (m *MarketplaceFieldMutation) ClearSampleValues() {
	m.sample_values = nil
	m.appendsample_values = nil
	m.clearedFields[marketplacefield.FieldSampleValues] = struct{}{}
}

// SampleValuesCleared returns if the "sample_values" field was cleared in this mutation.
func (m *MarketplaceFieldMutation) SampleValuesCleared() bool {
	_, ok := m.clearedFields[marketplacefield.FieldSampleValues]
	return ok
}

// ResetSampleValues resets all changes to the "sample_values" field.
func (m *MarketplaceFieldMutation) ResetSampleValues() {
	m.sample_values = nil
	m.appendsample_values = nil
	delete(m.clearedFields, marketplacefield.FieldSampleValues)
}

// SetFieldOrder sets the "field_order" field.
func (m *MarketplaceFieldMutation) SetFieldOrder(i int) {
	m.field_order = &i
	m.addfield_order = nil
}

// FieldOrder returns the value of the "field_order" field in the mutation.
func (m *MarketplaceFieldMutation) FieldOrder() (r int, exists bool) {
	v := m.field_order
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldOrder returns the old "field_order" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldFieldOrder(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldOrder: %w", err)
	}
	return oldValue.FieldOrder, nil
}

// AddFieldOrder adds i to the "field_order" field.
func (m *MarketplaceFieldMutation) AddFieldOrder(i int) {
	if m.addfield_order != nil {
		*m.addfield_order += i
	} else {
		m.addfield_order = &i
	}
}

// AddedFieldOrder returns the value that was added to the "field_order" field in this mutation.
func (m *MarketplaceFieldMutation) AddedFieldOrder() (r int, exists bool) {
	v := m.addfield_order
	if v == nil {
		return
	}
	return *v, true
}

// ClearFieldOrder clears the value of the "field_order" field.
func (m *MarketplaceFieldMutation) ClearFieldOrder() {
	m.field_order = nil
	m.addfield_order = nil
	m.clearedFields[marketplacefield.FieldFieldOrder] = struct{}{}
}

// FieldOrderCleared returns if the "field_order" field was cleared in this mutation.
func (m *MarketplaceFieldMutation) FieldOrderCleared() bool {
	_, ok := m.clearedFields[marketplacefield.FieldFieldOrder]
	return ok
}

// ResetFieldOrder resets all changes to the "field_order" field.
func (m *MarketplaceFieldMutation) ResetFieldOrder() {
	m.field_order = nil
	m.addfield_order = nil
	delete(m.clearedFields, marketplacefield.FieldFieldOrder)
}

// SetCategory sets the "category" field.
func (m *MarketplaceFieldMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *MarketplaceFieldMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *MarketplaceFieldMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[marketplacefield.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *MarketplaceFieldMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[marketplacefield.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *MarketplaceFieldMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, marketplacefield.FieldCategory)
}

// SetCreatedAt sets the "created_at" field.
func (m *MarketplaceFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarketplaceFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MarketplaceField entity.
// If the MarketplaceField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarketplaceFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MarketplaceFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (m *MarketplaceFieldMutation) ClearMarketplace() {
	m.clearedmarketplace = true
	m.clearedFields[marketplacefield.FieldMarketplaceID] = struct{}{}
}

// MarketplaceCleared reports if the "marketplace" edge to the Marketplace entity was cleared.
func (m *MarketplaceFieldMutation) MarketplaceCleared() bool {
	return m.clearedmarketplace
}

// MarketplaceIDs returns the "marketplace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MarketplaceID instead. It exists only for internal usage by the builders.
func (m *MarketplaceFieldMutation) MarketplaceIDs() (ids []uuid.UUID) {
	if id := m.marketplace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMarketplace resets all changes to the "marketplace" edge.
func (m *MarketplaceFieldMutation) ResetMarketplace() {
	m.marketplace = nil
	m.clearedmarketplace = false
}

// Where appends a list predicates to the MarketplaceFieldMutation builder.
func (m *MarketplaceFieldMutation) Where(ps ...predicate.MarketplaceField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarketplaceFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarketplaceFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MarketplaceField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarketplaceFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarketplaceFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MarketplaceField).
func (m *MarketplaceFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarketplaceFieldMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.marketplace != nil {
		fields = append(fields, marketplacefield.FieldMarketplaceID)
	}
	if m.field_name != nil {
		fields = append(fields, marketplacefield.FieldFieldName)
	}
	if m.display_name != nil {
		fields = append(fields, marketplacefield.FieldDisplayName)
	}
	if m.is_required != nil {
		fields = append(fields, marketplacefield.FieldIsRequired)
	}
	if m.description != nil {
		fields = append(fields, marketplacefield.FieldDescription)
	}
	if m.sample_values != nil {
		fields = append(fields, marketplacefield.FieldSampleValues)
	}
	if m.field_order != nil {
		fields = append(fields, marketplacefield.FieldFieldOrder)
	}
	if m.category != nil {
		fields = append(fields, marketplacefield.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, marketplacefield.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarketplaceFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case marketplacefield.FieldMarketplaceID:
		return m.MarketplaceID()
	case marketplacefield.FieldFieldName:
		return m.FieldName()
	case marketplacefield.FieldDisplayName:
		return m.DisplayName()
	case marketplacefield.FieldIsRequired:
		return m.IsRequired()
	case marketplacefield.FieldDescription:
		return m.Description()
	case marketplacefield.FieldSampleValues:
		return m.SampleValues()
	case marketplacefield.FieldFieldOrder:
		return m.FieldOrder()
	case marketplacefield.FieldCategory:
		return m.Category()
	case marketplacefield.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarketplaceFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case marketplacefield.FieldMarketplaceID:
		return m.OldMarketplaceID(ctx)
	case marketplacefield.FieldFieldName:
		return m.OldFieldName(ctx)
	case marketplacefield.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case marketplacefield.FieldIsRequired:
		return m.OldIsRequired(ctx)
	case marketplacefield.FieldDescription:
		return m.OldDescription(ctx)
	case marketplacefield.FieldSampleValues:
		return m.OldSampleValues(ctx)
	case marketplacefield.FieldFieldOrder:
		return m.OldFieldOrder(ctx)
	case marketplacefield.FieldCategory:
		return m.OldCategory(ctx)
	case marketplacefield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MarketplaceField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case marketplacefield.FieldMarketplaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceID(v)
		return nil
	case marketplacefield.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case marketplacefield.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case marketplacefield.FieldIsRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRequired(v)
		return nil
	case marketplacefield.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case marketplacefield.FieldSampleValues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleValues(v)
		return nil
	case marketplacefield.FieldFieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldOrder(v)
		return nil
	case marketplacefield.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case marketplacefield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarketplaceFieldMutation) AddedFields() []string {
	var fields []string
	if m.addfield_order != nil {
		fields = append(fields, marketplacefield.FieldFieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarketplaceFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case marketplacefield.FieldFieldOrder:
		return m.AddedFieldOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarketplaceFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case marketplacefield.FieldFieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFieldOrder(v)
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarketplaceFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(marketplacefield.FieldDisplayName) {
		fields = append(fields, marketplacefield.FieldDisplayName)
	}
	if m.FieldCleared(marketplacefield.FieldDescription) {
		fields = append(fields, marketplacefield.FieldDescription)
	}
	if m.FieldCleared(marketplacefield.FieldSampleValues) {
		fields = append(fields, marketplacefield.FieldSampleValues)
	}
	if m.FieldCleared(marketplacefield.FieldFieldOrder) {
		fields = append(fields, marketplacefield.FieldFieldOrder)
	}
	if m.FieldCleared(marketplacefield.FieldCategory) {
		fields = append(fields, marketplacefield.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarketplaceFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarketplaceFieldMutation) ClearField(name string) error {
	switch name {
	case marketplacefield.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case marketplacefield.FieldDescription:
		m.ClearDescription()
		return nil
	case marketplacefield.FieldSampleValues:
		m.ClearSampleValues()
		return nil
	case marketplacefield.FieldFieldOrder:
		m.ClearFieldOrder()
		return nil
	case marketplacefield.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarketplaceFieldMutation) ResetField(name string) error {
	switch name {
	case marketplacefield.FieldMarketplaceID:
		m.ResetMarketplaceID()
		return nil
	case marketplacefield.FieldFieldName:
		m.ResetFieldName()
		return nil
	case marketplacefield.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case marketplacefield.FieldIsRequired:
		m.ResetIsRequired()
		return nil
	case marketplacefield.FieldDescription:
		m.ResetDescription()
		return nil
	case marketplacefield.FieldSampleValues:
		m.ResetSampleValues()
		return nil
	case marketplacefield.FieldFieldOrder:
		m.ResetFieldOrder()
		return nil
	case marketplacefield.FieldCategory:
		m.ResetCategory()
		return nil
	case marketplacefield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarketplaceFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.marketplace != nil {
		edges = append(edges, marketplacefield.EdgeMarketplace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarketplaceFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case marketplacefield.EdgeMarketplace:
		if id := m.marketplace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarketplaceFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarketplaceFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarketplaceFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmarketplace {
		edges = append(edges, marketplacefield.EdgeMarketplace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarketplaceFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case marketplacefield.EdgeMarketplace:
		return m.clearedmarketplace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarketplaceFieldMutation) ClearEdge(name string) error {
	switch name {
	case marketplacefield.EdgeMarketplace:
		m.ClearMarketplace()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarketplaceFieldMutation) ResetEdge(name string) error {
	switch name {
	case marketplacefield.EdgeMarketplace:
		m.ResetMarketplace()
		return nil
	}
	return fmt.Errorf("unknown MarketplaceField edge %s", name)
}

// SessionRowMutation represents an operation that mutates the SessionRow nodes in the graph.
type SessionRowMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	row_index      *int
	addrow_index   *int
	data           *map[string]string
	edited_data    *map[string]string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionRow, error)
	predicates     []predicate.SessionRow
}

var _ ent.Mutation = (*SessionRowMutation)(nil)

// sessionrowOption allows management of the mutation configuration using functional options.
type sessionrowOption func(*SessionRowMutation)

// newSessionRowMutation creates new mutation for the SessionRow entity.
func newSessionRowMutation(c config, op Op, opts ...sessionrowOption) *SessionRowMutation {
	m := &SessionRowMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRowID sets the ID field of the mutation.
func withSessionRowID(id uuid.UUID) sessionrowOption {
	return func(m *SessionRowMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRow
		)
		m.oldValue = func(ctx context.Context) (*SessionRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRow sets the old SessionRow of the mutation.
func withSessionRow(node *SessionRow) sessionrowOption {
	return func(m *SessionRowMutation) {
		m.oldValue = func(context.Context) (*SessionRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionRow entities.
func (m *SessionRowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionRowMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionRowMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionRowMutation) ResetSessionID() {
	m.session = nil
}

// SetRowIndex sets the "row_index" field.
func (m *SessionRowMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *SessionRowMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *SessionRowMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *SessionRowMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *SessionRowMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetData sets the "data" field.
func (m *SessionRowMutation) SetData(value map[string]string) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SessionRowMutation) Data() (r map[string]string, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldData(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SessionRowMutation) ResetData() {
	m.data = nil
}

// SetEditedData sets the "edited_data" field.
func (m *SessionRowMutation) SetEditedData(value map[string]string) {
	m.edited_data = &value
}

// EditedData returns the value of the "edited_data" field in the mutation.
func (m *SessionRowMutation) EditedData() (r map[string]string, exists bool) {
	v := m.edited_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEditedData returns the old "edited_data" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldEditedData(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditedData: %w", err)
	}
	return oldValue.EditedData, nil
}

// ClearEditedData clears the value of the "edited_data" field.
func (m *SessionRowMutation) ClearEditedData() {
	m.edited_data = nil
	m.clearedFields[sessionrow.FieldEditedData] = struct{}{}
}

// EditedDataCleared returns if the "edited_data" field was cleared in this mutation.
func (m *SessionRowMutation) EditedDataCleared() bool {
	_, ok := m.clearedFields[sessionrow.FieldEditedData]
	return ok
}

// ResetEditedData resets all changes to the "edited_data" field.
func (m *SessionRowMutation) ResetEditedData() {
	m.edited_data = nil
	delete(m.clearedFields, sessionrow.FieldEditedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionRowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionRowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionRowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionRowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionRowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionRow entity.
// If the SessionRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionRowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (m *SessionRowMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionrow.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the UploadSession entity was cleared.
func (m *SessionRowMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionRowMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionRowMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionRowMutation builder.
func (m *SessionRowMutation) Where(ps ...predicate.SessionRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRow).
func (m *SessionRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRowMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, sessionrow.FieldSessionID)
	}
	if m.row_index != nil {
		fields = append(fields, sessionrow.FieldRowIndex)
	}
	if m.data != nil {
		fields = append(fields, sessionrow.FieldData)
	}
	if m.edited_data != nil {
		fields = append(fields, sessionrow.FieldEditedData)
	}
	if m.created_at != nil {
		fields = append(fields, sessionrow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionrow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrow.FieldSessionID:
		return m.SessionID()
	case sessionrow.FieldRowIndex:
		return m.RowIndex()
	case sessionrow.FieldData:
		return m.Data()
	case sessionrow.FieldEditedData:
		return m.EditedData()
	case sessionrow.FieldCreatedAt:
		return m.CreatedAt()
	case sessionrow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrow.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionrow.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case sessionrow.FieldData:
		return m.OldData(ctx)
	case sessionrow.FieldEditedData:
		return m.OldEditedData(ctx)
	case sessionrow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionrow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrow.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case sessionrow.FieldData:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case sessionrow.FieldEditedData:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditedData(v)
		return nil
	case sessionrow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionrow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRowMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, sessionrow.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionrow.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionrow.FieldEditedData) {
		fields = append(fields, sessionrow.FieldEditedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRowMutation) ClearField(name string) error {
	switch name {
	case sessionrow.FieldEditedData:
		m.ClearEditedData()
		return nil
	}
	return fmt.Errorf("unknown SessionRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRowMutation) ResetField(name string) error {
	switch name {
	case sessionrow.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionrow.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case sessionrow.FieldData:
		m.ResetData()
		return nil
	case sessionrow.FieldEditedData:
		m.ResetEditedData()
		return nil
	case sessionrow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionrow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionrow.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionrow.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionrow.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRowMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionrow.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRowMutation) ClearEdge(name string) error {
	switch name {
	case sessionrow.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRowMutation) ResetEdge(name string) error {
	switch name {
	case sessionrow.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionRow edge %s", name)
}

// UploadSessionMutation represents an operation that mutates the UploadSession nodes in the graph.
type UploadSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	original_filename      *string
	file_path              *string
	status                 *string
	row_count              *int
	addrow_count           *int
	user_columns           *[]entity.SourceColumn
	appenduser_columns     []entity.SourceColumn
	category               *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	marketplace            *uuid.UUID
	clearedmarketplace     bool
	rows                   map[uuid.UUID]struct{}
	removedrows            map[uuid.UUID]struct{}
	clearedrows            bool
	mappings               map[uuid.UUID]struct{}
	removedmappings        map[uuid.UUID]struct{}
	clearedmappings        bool
	generated_files        map[uuid.UUID]struct{}
	removedgenerated_files map[uuid.UUID]struct{}
	clearedgenerated_files bool
	done                   bool
	oldValue               func(context.Context) (*UploadSession, error)
	predicates             []predicate.UploadSession
}

var _ ent.Mutation = (*UploadSessionMutation)(nil)

// uploadsessionOption allows management of the mutation configuration using functional options.
type uploadsessionOption func(*UploadSessionMutation)

// newUploadSessionMutation creates new mutation for the UploadSession entity.
func newUploadSessionMutation(c config, op Op, opts ...uploadsessionOption) *UploadSessionMutation {
	m := &UploadSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadSessionID sets the ID field of the mutation.
func withUploadSessionID(id uuid.UUID) uploadsessionOption {
	return func(m *UploadSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadSession
		)
		m.oldValue = func(ctx context.Context) (*UploadSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadSession sets the old UploadSession of the mutation.
func withUploadSession(node *UploadSession) uploadsessionOption {
	return func(m *UploadSessionMutation) {
		m.oldValue = func(context.Context) (*UploadSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadSession entities.
func (m *UploadSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalFilename sets the "original_filename" field.
func (m *UploadSessionMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *UploadSessionMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *UploadSessionMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *UploadSessionMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *UploadSessionMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *UploadSessionMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[uploadsession.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *UploadSessionMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *UploadSessionMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, uploadsession.FieldFilePath)
}

// SetMarketplaceID sets the "marketplace_id" field.
func (m *UploadSessionMutation) SetMarketplaceID(u uuid.UUID) {
	m.marketplace = &u
}

// MarketplaceID returns the value of the "marketplace_id" field in the mutation.
func (m *UploadSessionMutation) MarketplaceID() (r uuid.UUID, exists bool) {
	v := m.marketplace
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketplaceID returns the old "marketplace_id" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldMarketplaceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketplaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketplaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketplaceID: %w", err)
	}
	return oldValue.MarketplaceID, nil
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (m *UploadSessionMutation) ClearMarketplaceID() {
	m.marketplace = nil
	m.clearedFields[uploadsession.FieldMarketplaceID] = struct{}{}
}

// MarketplaceIDCleared returns if the "marketplace_id" field was cleared in this mutation.
func (m *UploadSessionMutation) MarketplaceIDCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldMarketplaceID]
	return ok
}

// ResetMarketplaceID resets all changes to the "marketplace_id" field.
func (m *UploadSessionMutation) ResetMarketplaceID() {
	m.marketplace = nil
	delete(m.clearedFields, uploadsession.FieldMarketplaceID)
}

// SetStatus sets the "status" field.
func (m *UploadSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadSessionMutation) ResetStatus() {
	m.status = nil
}

// SetRowCount sets the "row_count" field.
func (m *UploadSessionMutation) SetRowCount(i int) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *UploadSessionMutation) RowCount() (r int, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldRowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *UploadSessionMutation) AddRowCount(i int) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *UploadSessionMutation) AddedRowCount() (r int, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *UploadSessionMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
}

// SetUserColumns sets the "user_columns" field.
func (m *UploadSessionMutation) SetUserColumns(ec []entity.SourceColumn) {
	m.user_columns = &ec
	m.appenduser_columns = nil
}

// UserColumns returns the value of the "user_columns" field in the mutation.
func (m *UploadSessionMutation) UserColumns() (r []entity.SourceColumn, exists bool) {
	v := m.user_columns
	if v == nil {
		return
	}
	return *v, true
}

// OldUserColumns returns the old "user_columns" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldUserColumns(ctx context.Context) (v []entity.SourceColumn, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserColumns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserColumns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserColumns: %w", err)
	}
	return oldValue.UserColumns, nil
}

// AppendUserColumns adds ec to the "user_columns" field.
func (m *UploadSessionMutation) AppendUserColumns(ec []entity.SourceColumn) {
	m.appenduser_columns = append(m.appenduser_columns, ec...)
}

// AppendedUserColumns returns the list of values that were appended to the "user_columns" field in this mutation.
func (m *UploadSessionMutation) AppendedUserColumns() ([]entity.SourceColumn, bool) {
	if len(m.appenduser_columns) == 0 {
		return nil, false
	}
	return m.appenduser_columns, true
}

// ClearUserColumns clears the value of the "user_columns" field.
func (m *UploadSessionMutation) ClearUserColumns() {
	m.user_columns = nil
	m.appenduser_columns = nil
	m.clearedFields[uploadsession.FieldUserColumns] = struct{}{}
}

// UserColumnsCleared returns if the "user_columns" field was cleared in this mutation.
func (m *UploadSessionMutation) UserColumnsCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldUserColumns]
	return ok
}

// ResetUserColumns resets all changes to the "user_columns" field.
func (m *UploadSessionMutation) ResetUserColumns() {
	m.user_columns = nil
	m.appenduser_columns = nil
	delete(m.clearedFields, uploadsession.FieldUserColumns)
}

// SetCategory sets the "category" field.
func (m *UploadSessionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *UploadSessionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *UploadSessionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[uploadsession.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *UploadSessionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *UploadSessionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, uploadsession.FieldCategory)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (m *UploadSessionMutation) ClearMarketplace() {
	m.clearedmarketplace = true
	m.clearedFields[uploadsession.FieldMarketplaceID] = struct{}{}
}

// MarketplaceCleared reports if the "marketplace" edge to the Marketplace entity was cleared.
func (m *UploadSessionMutation) MarketplaceCleared() bool {
	return m.MarketplaceIDCleared() || m.clearedmarketplace
}

// MarketplaceIDs returns the "marketplace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MarketplaceID instead. It exists only for internal usage by the builders.
func (m *UploadSessionMutation) MarketplaceIDs() (ids []uuid.UUID) {
	if id := m.marketplace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMarketplace resets all changes to the "marketplace" edge.
func (m *UploadSessionMutation) ResetMarketplace() {
	m.marketplace = nil
	m.clearedmarketplace = false
}

// AddRowIDs adds the "rows" edge to the SessionRow entity by ids.
func (m *UploadSessionMutation) AddRowIDs(ids ...uuid.UUID) {
	if m.rows == nil {
		m.rows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rows[ids[i]] = struct{}{}
	}
}

// ClearRows clears the "rows" edge to the SessionRow entity.
func (m *UploadSessionMutation) ClearRows() {
	m.clearedrows = true
}

// RowsCleared reports if the "rows" edge to the SessionRow entity was cleared.
func (m *UploadSessionMutation) RowsCleared() bool {
	return m.clearedrows
}

// RemoveRowIDs removes the "rows" edge to the SessionRow entity by IDs.
func (m *UploadSessionMutation) RemoveRowIDs(ids ...uuid.UUID) {
	if m.removedrows == nil {
		m.removedrows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rows, ids[i])
		m.removedrows[ids[i]] = struct{}{}
	}
}

// RemovedRows returns the removed IDs of the "rows" edge to the SessionRow entity.
func (m *UploadSessionMutation) RemovedRowsIDs() (ids []uuid.UUID) {
	for id := range m.removedrows {
		ids = append(ids, id)
	}
	return
}

// RowsIDs returns the "rows" edge IDs in the mutation.
func (m *UploadSessionMutation) RowsIDs() (ids []uuid.UUID) {
	for id := range m.rows {
		ids = append(ids, id)
	}
	return
}

// ResetRows resets all changes to the "rows" edge.
func (m *UploadSessionMutation) ResetRows() {
	m.rows = nil
	m.clearedrows = false
	m.removedrows = nil
}

// AddMappingIDs adds the "mappings" edge to the FieldMapping entity by ids.
func (m *UploadSessionMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the FieldMapping entity.
func (m *UploadSessionMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the FieldMapping entity was cleared.
func (m *UploadSessionMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the FieldMapping entity by IDs.
func (m *UploadSessionMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the FieldMapping entity.
func (m *UploadSessionMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *UploadSessionMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *UploadSessionMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// AddGeneratedFileIDs adds the "generated_files" edge to the GeneratedFile entity by ids.
func (m *UploadSessionMutation) AddGeneratedFileIDs(ids ...uuid.UUID) {
	if m.generated_files == nil {
		m.generated_files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.generated_files[ids[i]] = struct{}{}
	}
}

// ClearGeneratedFiles clears the "generated_files" edge to the GeneratedFile entity.
func (m *UploadSessionMutation) ClearGeneratedFiles() {
	m.clearedgenerated_files = true
}

// GeneratedFilesCleared reports if the "generated_files" edge to the GeneratedFile entity was cleared.
func (m *UploadSessionMutation) GeneratedFilesCleared() bool {
	return m.clearedgenerated_files
}

// RemoveGeneratedFileIDs removes the "generated_files" edge to the GeneratedFile entity by IDs.
func (m *UploadSessionMutation) RemoveGeneratedFileIDs(ids ...uuid.UUID) {
	if m.removedgenerated_files == nil {
		m.removedgenerated_files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.generated_files, ids[i])
		m.removedgenerated_files[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedFiles returns the removed IDs of the "generated_files" edge to the GeneratedFile entity.
func (m *UploadSessionMutation) RemovedGeneratedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedgenerated_files {
		ids = append(ids, id)
	}
	return
}

// GeneratedFilesIDs returns the "generated_files" edge IDs in the mutation.
func (m *UploadSessionMutation) GeneratedFilesIDs() (ids []uuid.UUID) {
	for id := range m.generated_files {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedFiles resets all changes to the "generated_files" edge.
func (m *UploadSessionMutation) ResetGeneratedFiles() {
	m.generated_files = nil
	m.clearedgenerated_files = false
	m.removedgenerated_files = nil
}

// Where appends a list predicates to the UploadSessionMutation builder.
func (m *UploadSessionMutation) Where(ps ...predicate.UploadSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadSession).
func (m *UploadSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.original_filename != nil {
		fields = append(fields, uploadsession.FieldOriginalFilename)
	}
	if m.file_path != nil {
		fields = append(fields, uploadsession.FieldFilePath)
	}
	if m.marketplace != nil {
		fields = append(fields, uploadsession.FieldMarketplaceID)
	}
	if m.status != nil {
		fields = append(fields, uploadsession.FieldStatus)
	}
	if m.row_count != nil {
		fields = append(fields, uploadsession.FieldRowCount)
	}
	if m.user_columns != nil {
		fields = append(fields, uploadsession.FieldUserColumns)
	}
	if m.category != nil {
		fields = append(fields, uploadsession.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, uploadsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uploadsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadsession.FieldOriginalFilename:
		return m.OriginalFilename()
	case uploadsession.FieldFilePath:
		return m.FilePath()
	case uploadsession.FieldMarketplaceID:
		return m.MarketplaceID()
	case uploadsession.FieldStatus:
		return m.Status()
	case uploadsession.FieldRowCount:
		return m.RowCount()
	case uploadsession.FieldUserColumns:
		return m.UserColumns()
	case uploadsession.FieldCategory:
		return m.Category()
	case uploadsession.FieldCreatedAt:
		return m.CreatedAt()
	case uploadsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadsession.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case uploadsession.FieldFilePath:
		return m.OldFilePath(ctx)
	case uploadsession.FieldMarketplaceID:
		return m.OldMarketplaceID(ctx)
	case uploadsession.FieldStatus:
		return m.OldStatus(ctx)
	case uploadsession.FieldRowCount:
		return m.OldRowCount(ctx)
	case uploadsession.FieldUserColumns:
		return m.OldUserColumns(ctx)
	case uploadsession.FieldCategory:
		return m.OldCategory(ctx)
	case uploadsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uploadsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadsession.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case uploadsession.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case uploadsession.FieldMarketplaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketplaceID(v)
		return nil
	case uploadsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadsession.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case uploadsession.FieldUserColumns:
		v, ok := value.([]entity.SourceColumn)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserColumns(v)
		return nil
	case uploadsession.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case uploadsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uploadsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadSessionMutation) AddedFields() []string {
	var fields []string
	if m.addrow_count != nil {
		fields = append(fields, uploadsession.FieldRowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadsession.FieldRowCount:
		return m.AddedRowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadsession.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadsession.FieldFilePath) {
		fields = append(fields, uploadsession.FieldFilePath)
	}
	if m.FieldCleared(uploadsession.FieldMarketplaceID) {
		fields = append(fields, uploadsession.FieldMarketplaceID)
	}
	if m.FieldCleared(uploadsession.FieldUserColumns) {
		fields = append(fields, uploadsession.FieldUserColumns)
	}
	if m.FieldCleared(uploadsession.FieldCategory) {
		fields = append(fields, uploadsession.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadSessionMutation) ClearField(name string) error {
	switch name {
	case uploadsession.FieldFilePath:
		m.ClearFilePath()
		return nil
	case uploadsession.FieldMarketplaceID:
		m.ClearMarketplaceID()
		return nil
	case uploadsession.FieldUserColumns:
		m.ClearUserColumns()
		return nil
	case uploadsession.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown UploadSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadSessionMutation) ResetField(name string) error {
	switch name {
	case uploadsession.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case uploadsession.FieldFilePath:
		m.ResetFilePath()
		return nil
	case uploadsession.FieldMarketplaceID:
		m.ResetMarketplaceID()
		return nil
	case uploadsession.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadsession.FieldRowCount:
		m.ResetRowCount()
		return nil
	case uploadsession.FieldUserColumns:
		m.ResetUserColumns()
		return nil
	case uploadsession.FieldCategory:
		m.ResetCategory()
		return nil
	case uploadsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uploadsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.marketplace != nil {
		edges = append(edges, uploadsession.EdgeMarketplace)
	}
	if m.rows != nil {
		edges = append(edges, uploadsession.EdgeRows)
	}
	if m.mappings != nil {
		edges = append(edges, uploadsession.EdgeMappings)
	}
	if m.generated_files != nil {
		edges = append(edges, uploadsession.EdgeGeneratedFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadsession.EdgeMarketplace:
		if id := m.marketplace; id != nil {
			return []ent.Value{*id}
		}
	case uploadsession.EdgeRows:
		ids := make([]ent.Value, 0, len(m.rows))
		for id := range m.rows {
			ids = append(ids, id)
		}
		return ids
	case uploadsession.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	case uploadsession.EdgeGeneratedFiles:
		ids := make([]ent.Value, 0, len(m.generated_files))
		for id := range m.generated_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedrows != nil {
		edges = append(edges, uploadsession.EdgeRows)
	}
	if m.removedmappings != nil {
		edges = append(edges, uploadsession.EdgeMappings)
	}
	if m.removedgenerated_files != nil {
		edges = append(edges, uploadsession.EdgeGeneratedFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case uploadsession.EdgeRows:
		ids := make([]ent.Value, 0, len(m.removedrows))
		for id := range m.removedrows {
			ids = append(ids, id)
		}
		return ids
	case uploadsession.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	case uploadsession.EdgeGeneratedFiles:
		ids := make([]ent.Value, 0, len(m.removedgenerated_files))
		for id := range m.removedgenerated_files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmarketplace {
		edges = append(edges, uploadsession.EdgeMarketplace)
	}
	if m.clearedrows {
		edges = append(edges, uploadsession.EdgeRows)
	}
	if m.clearedmappings {
		edges = append(edges, uploadsession.EdgeMappings)
	}
	if m.clearedgenerated_files {
		edges = append(edges, uploadsession.EdgeGeneratedFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadsession.EdgeMarketplace:
		return m.clearedmarketplace
	case uploadsession.EdgeRows:
		return m.clearedrows
	case uploadsession.EdgeMappings:
		return m.clearedmappings
	case uploadsession.EdgeGeneratedFiles:
		return m.clearedgenerated_files
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadSessionMutation) ClearEdge(name string) error {
	switch name {
	case uploadsession.EdgeMarketplace:
		m.ClearMarketplace()
		return nil
	}
	return fmt.Errorf("unknown UploadSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadSessionMutation) ResetEdge(name string) error {
	switch name {
	case uploadsession.EdgeMarketplace:
		m.ResetMarketplace()
		return nil
	case uploadsession.EdgeRows:
		m.ResetRows()
		return nil
	case uploadsession.EdgeMappings:
		m.ResetMappings()
		return nil
	case uploadsession.EdgeGeneratedFiles:
		m.ResetGeneratedFiles()
		return nil
	}
	return fmt.Errorf("unknown UploadSession edge %s", name)
}
