// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Marketplace struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DisplayName      string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	TemplateFilePath string                 `protobuf:"bytes,4,opt,name=template_file_path,json=templateFilePath,proto3" json:"template_file_path,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Marketplace) Reset() {
	*x = Marketplace{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Marketplace) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Marketplace) ProtoMessage() {}

func (x *Marketplace) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Marketplace.ProtoReflect.Descriptor instead.
func (*Marketplace) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *Marketplace) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Marketplace) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Marketplace) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Marketplace) GetTemplateFilePath() string {
	if x != nil {
		return x.TemplateFilePath
	}
	return ""
}

func (x *Marketplace) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type MarketplaceField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MarketplaceId string                 `protobuf:"bytes,2,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,3,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	DisplayName   string                 `protobuf:"bytes,4,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	IsRequired    bool                   `protobuf:"varint,5,opt,name=is_required,json=isRequired,proto3" json:"is_required,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	SampleValues  []string               `protobuf:"bytes,7,rep,name=sample_values,json=sampleValues,proto3" json:"sample_values,omitempty"`
	FieldOrder    *int32                 `protobuf:"varint,8,opt,name=field_order,json=fieldOrder,proto3,oneof" json:"field_order,omitempty"`
	Category      string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarketplaceField) Reset() {
	*x = MarketplaceField{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketplaceField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketplaceField) ProtoMessage() {}

func (x *MarketplaceField) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketplaceField.ProtoReflect.Descriptor instead.
func (*MarketplaceField) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *MarketplaceField) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MarketplaceField) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *MarketplaceField) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *MarketplaceField) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *MarketplaceField) GetIsRequired() bool {
	if x != nil {
		return x.IsRequired
	}
	return false
}

func (x *MarketplaceField) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *MarketplaceField) GetSampleValues() []string {
	if x != nil {
		return x.SampleValues
	}
	return nil
}

func (x *MarketplaceField) GetFieldOrder() int32 {
	if x != nil && x.FieldOrder != nil {
		return *x.FieldOrder
	}
	return 0
}

func (x *MarketplaceField) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *MarketplaceField) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SourceColumn struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	SampleValues  []string               `protobuf:"bytes,2,rep,name=sample_values,json=sampleValues,proto3" json:"sample_values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SourceColumn) Reset() {
	*x = SourceColumn{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SourceColumn) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SourceColumn) ProtoMessage() {}

func (x *SourceColumn) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SourceColumn.ProtoReflect.Descriptor instead.
func (*SourceColumn) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *SourceColumn) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SourceColumn) GetSampleValues() []string {
	if x != nil {
		return x.SampleValues
	}
	return nil
}

type UploadSession struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,2,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	FilePath         string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	MarketplaceId    string                 `protobuf:"bytes,4,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	RowCount         int32                  `protobuf:"varint,6,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	UserColumns      []*SourceColumn        `protobuf:"bytes,7,rep,name=user_columns,json=userColumns,proto3" json:"user_columns,omitempty"`
	Category         string                 `protobuf:"bytes,8,opt,name=category,proto3" json:"category,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *UploadSession) Reset() {
	*x = UploadSession{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadSession) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadSession) ProtoMessage() {}

func (x *UploadSession) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadSession.ProtoReflect.Descriptor instead.
func (*UploadSession) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{3}
}

func (x *UploadSession) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UploadSession) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *UploadSession) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *UploadSession) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *UploadSession) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UploadSession) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

func (x *UploadSession) GetUserColumns() []*SourceColumn {
	if x != nil {
		return x.UserColumns
	}
	return nil
}

func (x *UploadSession) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UploadSession) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UploadSession) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SessionRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	RowIndex      int32                  `protobuf:"varint,3,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	Data          map[string]string      `protobuf:"bytes,4,rep,name=data,proto3" json:"data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	EditedData    map[string]string      `protobuf:"bytes,5,rep,name=edited_data,json=editedData,proto3" json:"edited_data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionRow) Reset() {
	*x = SessionRow{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionRow) ProtoMessage() {}

func (x *SessionRow) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionRow.ProtoReflect.Descriptor instead.
func (*SessionRow) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *SessionRow) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SessionRow) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SessionRow) GetRowIndex() int32 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

func (x *SessionRow) GetData() map[string]string {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *SessionRow) GetEditedData() map[string]string {
	if x != nil {
		return x.EditedData
	}
	return nil
}

func (x *SessionRow) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *SessionRow) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type FieldMapping struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserColumn    string                 `protobuf:"bytes,3,opt,name=user_column,json=userColumn,proto3" json:"user_column,omitempty"`
	FieldId       string                 `protobuf:"bytes,4,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,5,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	Origin        string                 `protobuf:"bytes,6,opt,name=origin,proto3" json:"origin,omitempty"`
	Confidence    *float32               `protobuf:"fixed32,7,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	Position      int32                  `protobuf:"varint,8,opt,name=position,proto3" json:"position,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldMapping) Reset() {
	*x = FieldMapping{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldMapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldMapping) ProtoMessage() {}

func (x *FieldMapping) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldMapping.ProtoReflect.Descriptor instead.
func (*FieldMapping) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *FieldMapping) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FieldMapping) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *FieldMapping) GetUserColumn() string {
	if x != nil {
		return x.UserColumn
	}
	return ""
}

func (x *FieldMapping) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *FieldMapping) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *FieldMapping) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *FieldMapping) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *FieldMapping) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *FieldMapping) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GeneratedFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	FilePath      string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	OutputFormat  string                 `protobuf:"bytes,4,opt,name=output_format,json=outputFormat,proto3" json:"output_format,omitempty"`
	RowCount      int32                  `protobuf:"varint,5,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GeneratedFile) Reset() {
	*x = GeneratedFile{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneratedFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneratedFile) ProtoMessage() {}

func (x *GeneratedFile) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneratedFile.ProtoReflect.Descriptor instead.
func (*GeneratedFile) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{6}
}

func (x *GeneratedFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GeneratedFile) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *GeneratedFile) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *GeneratedFile) GetOutputFormat() string {
	if x != nil {
		return x.OutputFormat
	}
	return ""
}

func (x *GeneratedFile) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

func (x *GeneratedFile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Suggestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserColumn    string                 `protobuf:"bytes,1,opt,name=user_column,json=userColumn,proto3" json:"user_column,omitempty"`
	FieldName     *string                `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3,oneof" json:"field_name,omitempty"`
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Suggestion) Reset() {
	*x = Suggestion{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Suggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Suggestion) ProtoMessage() {}

func (x *Suggestion) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Suggestion.ProtoReflect.Descriptor instead.
func (*Suggestion) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{7}
}

func (x *Suggestion) GetUserColumn() string {
	if x != nil {
		return x.UserColumn
	}
	return ""
}

func (x *Suggestion) GetFieldName() string {
	if x != nil && x.FieldName != nil {
		return *x.FieldName
	}
	return ""
}

func (x *Suggestion) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type UploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	FilePath      string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"` // blob-store key chosen by the caller, informational
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadRequest) Reset() {
	*x = UploadRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadRequest) ProtoMessage() {}

func (x *UploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadRequest.ProtoReflect.Descriptor instead.
func (*UploadRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{8}
}

func (x *UploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type UploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *UploadSession         `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadResponse) Reset() {
	*x = UploadResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadResponse) ProtoMessage() {}

func (x *UploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadResponse.ProtoReflect.Descriptor instead.
func (*UploadResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{9}
}

func (x *UploadResponse) GetSession() *UploadSession {
	if x != nil {
		return x.Session
	}
	return nil
}

type GetSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionRequest) Reset() {
	*x = GetSessionRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionRequest) ProtoMessage() {}

func (x *GetSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionRequest.ProtoReflect.Descriptor instead.
func (*GetSessionRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{10}
}

func (x *GetSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *UploadSession         `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionResponse) Reset() {
	*x = GetSessionResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionResponse) ProtoMessage() {}

func (x *GetSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionResponse.ProtoReflect.Descriptor instead.
func (*GetSessionResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{11}
}

func (x *GetSessionResponse) GetSession() *UploadSession {
	if x != nil {
		return x.Session
	}
	return nil
}

type ListSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsRequest) Reset() {
	*x = ListSessionsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsRequest) ProtoMessage() {}

func (x *ListSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsRequest.ProtoReflect.Descriptor instead.
func (*ListSessionsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{12}
}

func (x *ListSessionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListSessionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*UploadSession       `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsResponse) Reset() {
	*x = ListSessionsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsResponse) ProtoMessage() {}

func (x *ListSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsResponse.ProtoReflect.Descriptor instead.
func (*ListSessionsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{13}
}

func (x *ListSessionsResponse) GetSessions() []*UploadSession {
	if x != nil {
		return x.Sessions
	}
	return nil
}

type AssignMarketplaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	MarketplaceId string                 `protobuf:"bytes,2,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignMarketplaceRequest) Reset() {
	*x = AssignMarketplaceRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignMarketplaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignMarketplaceRequest) ProtoMessage() {}

func (x *AssignMarketplaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignMarketplaceRequest.ProtoReflect.Descriptor instead.
func (*AssignMarketplaceRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{14}
}

func (x *AssignMarketplaceRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *AssignMarketplaceRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *AssignMarketplaceRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type AssignMarketplaceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *UploadSession         `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignMarketplaceResponse) Reset() {
	*x = AssignMarketplaceResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignMarketplaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignMarketplaceResponse) ProtoMessage() {}

func (x *AssignMarketplaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignMarketplaceResponse.ProtoReflect.Descriptor instead.
func (*AssignMarketplaceResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{15}
}

func (x *AssignMarketplaceResponse) GetSession() *UploadSession {
	if x != nil {
		return x.Session
	}
	return nil
}

type ListRowsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRowsRequest) Reset() {
	*x = ListRowsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRowsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRowsRequest) ProtoMessage() {}

func (x *ListRowsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRowsRequest.ProtoReflect.Descriptor instead.
func (*ListRowsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{16}
}

func (x *ListRowsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ListRowsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListRowsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListRowsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*SessionRow          `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRowsResponse) Reset() {
	*x = ListRowsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRowsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRowsResponse) ProtoMessage() {}

func (x *ListRowsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRowsResponse.ProtoReflect.Descriptor instead.
func (*ListRowsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{17}
}

func (x *ListRowsResponse) GetRows() []*SessionRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *ListRowsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type EditRowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	RowId         string                 `protobuf:"bytes,2,opt,name=row_id,json=rowId,proto3" json:"row_id,omitempty"`
	Edits         map[string]string      `protobuf:"bytes,3,rep,name=edits,proto3" json:"edits,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditRowRequest) Reset() {
	*x = EditRowRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditRowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditRowRequest) ProtoMessage() {}

func (x *EditRowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditRowRequest.ProtoReflect.Descriptor instead.
func (*EditRowRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{18}
}

func (x *EditRowRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *EditRowRequest) GetRowId() string {
	if x != nil {
		return x.RowId
	}
	return ""
}

func (x *EditRowRequest) GetEdits() map[string]string {
	if x != nil {
		return x.Edits
	}
	return nil
}

type EditRowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Row           *SessionRow            `protobuf:"bytes,1,opt,name=row,proto3" json:"row,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditRowResponse) Reset() {
	*x = EditRowResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditRowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditRowResponse) ProtoMessage() {}

func (x *EditRowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditRowResponse.ProtoReflect.Descriptor instead.
func (*EditRowResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{19}
}

func (x *EditRowResponse) GetRow() *SessionRow {
	if x != nil {
		return x.Row
	}
	return nil
}

type CreateMarketplaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMarketplaceRequest) Reset() {
	*x = CreateMarketplaceRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMarketplaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMarketplaceRequest) ProtoMessage() {}

func (x *CreateMarketplaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMarketplaceRequest.ProtoReflect.Descriptor instead.
func (*CreateMarketplaceRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{20}
}

func (x *CreateMarketplaceRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateMarketplaceRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

type CreateMarketplaceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marketplace   *Marketplace           `protobuf:"bytes,1,opt,name=marketplace,proto3" json:"marketplace,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMarketplaceResponse) Reset() {
	*x = CreateMarketplaceResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMarketplaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMarketplaceResponse) ProtoMessage() {}

func (x *CreateMarketplaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMarketplaceResponse.ProtoReflect.Descriptor instead.
func (*CreateMarketplaceResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{21}
}

func (x *CreateMarketplaceResponse) GetMarketplace() *Marketplace {
	if x != nil {
		return x.Marketplace
	}
	return nil
}

type ListMarketplacesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMarketplacesRequest) Reset() {
	*x = ListMarketplacesRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMarketplacesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMarketplacesRequest) ProtoMessage() {}

func (x *ListMarketplacesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMarketplacesRequest.ProtoReflect.Descriptor instead.
func (*ListMarketplacesRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{22}
}

type ListMarketplacesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marketplaces  []*Marketplace         `protobuf:"bytes,1,rep,name=marketplaces,proto3" json:"marketplaces,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMarketplacesResponse) Reset() {
	*x = ListMarketplacesResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMarketplacesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMarketplacesResponse) ProtoMessage() {}

func (x *ListMarketplacesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMarketplacesResponse.ProtoReflect.Descriptor instead.
func (*ListMarketplacesResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{23}
}

func (x *ListMarketplacesResponse) GetMarketplaces() []*Marketplace {
	if x != nil {
		return x.Marketplaces
	}
	return nil
}

type GetMarketplaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMarketplaceRequest) Reset() {
	*x = GetMarketplaceRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMarketplaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMarketplaceRequest) ProtoMessage() {}

func (x *GetMarketplaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMarketplaceRequest.ProtoReflect.Descriptor instead.
func (*GetMarketplaceRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{24}
}

func (x *GetMarketplaceRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

type GetMarketplaceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marketplace   *Marketplace           `protobuf:"bytes,1,opt,name=marketplace,proto3" json:"marketplace,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMarketplaceResponse) Reset() {
	*x = GetMarketplaceResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMarketplaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMarketplaceResponse) ProtoMessage() {}

func (x *GetMarketplaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMarketplaceResponse.ProtoReflect.Descriptor instead.
func (*GetMarketplaceResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{25}
}

func (x *GetMarketplaceResponse) GetMarketplace() *Marketplace {
	if x != nil {
		return x.Marketplace
	}
	return nil
}

type DeleteMarketplaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMarketplaceRequest) Reset() {
	*x = DeleteMarketplaceRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMarketplaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMarketplaceRequest) ProtoMessage() {}

func (x *DeleteMarketplaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMarketplaceRequest.ProtoReflect.Descriptor instead.
func (*DeleteMarketplaceRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{26}
}

func (x *DeleteMarketplaceRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

type DeleteMarketplaceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMarketplaceResponse) Reset() {
	*x = DeleteMarketplaceResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMarketplaceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMarketplaceResponse) ProtoMessage() {}

func (x *DeleteMarketplaceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMarketplaceResponse.ProtoReflect.Descriptor instead.
func (*DeleteMarketplaceResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{27}
}

type ListFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"` // empty = all categories
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsRequest) Reset() {
	*x = ListFieldsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsRequest) ProtoMessage() {}

func (x *ListFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{28}
}

func (x *ListFieldsRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *ListFieldsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ListFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*MarketplaceField    `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsResponse) Reset() {
	*x = ListFieldsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsResponse) ProtoMessage() {}

func (x *ListFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{29}
}

func (x *ListFieldsResponse) GetFields() []*MarketplaceField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type FieldUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IsRequired    *bool                  `protobuf:"varint,2,opt,name=is_required,json=isRequired,proto3,oneof" json:"is_required,omitempty"`
	Description   *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	DisplayName   *string                `protobuf:"bytes,4,opt,name=display_name,json=displayName,proto3,oneof" json:"display_name,omitempty"`
	FieldOrder    *int32                 `protobuf:"varint,5,opt,name=field_order,json=fieldOrder,proto3,oneof" json:"field_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldUpdate) Reset() {
	*x = FieldUpdate{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldUpdate) ProtoMessage() {}

func (x *FieldUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldUpdate.ProtoReflect.Descriptor instead.
func (*FieldUpdate) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{30}
}

func (x *FieldUpdate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FieldUpdate) GetIsRequired() bool {
	if x != nil && x.IsRequired != nil {
		return *x.IsRequired
	}
	return false
}

func (x *FieldUpdate) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *FieldUpdate) GetDisplayName() string {
	if x != nil && x.DisplayName != nil {
		return *x.DisplayName
	}
	return ""
}

func (x *FieldUpdate) GetFieldOrder() int32 {
	if x != nil && x.FieldOrder != nil {
		return *x.FieldOrder
	}
	return 0
}

type UpdateFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updates       []*FieldUpdate         `protobuf:"bytes,1,rep,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldsRequest) Reset() {
	*x = UpdateFieldsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldsRequest) ProtoMessage() {}

func (x *UpdateFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldsRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{31}
}

func (x *UpdateFieldsRequest) GetUpdates() []*FieldUpdate {
	if x != nil {
		return x.Updates
	}
	return nil
}

type UpdateFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*MarketplaceField    `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldsResponse) Reset() {
	*x = UpdateFieldsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldsResponse) ProtoMessage() {}

func (x *UpdateFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldsResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{32}
}

func (x *UpdateFieldsResponse) GetFields() []*MarketplaceField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ExtractTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTemplateRequest) Reset() {
	*x = ExtractTemplateRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTemplateRequest) ProtoMessage() {}

func (x *ExtractTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTemplateRequest.ProtoReflect.Descriptor instead.
func (*ExtractTemplateRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{33}
}

func (x *ExtractTemplateRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *ExtractTemplateRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExtractTemplateRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractTemplateRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ExtractTemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*MarketplaceField    `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	ColumnCount   int32                  `protobuf:"varint,2,opt,name=column_count,json=columnCount,proto3" json:"column_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractTemplateResponse) Reset() {
	*x = ExtractTemplateResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractTemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractTemplateResponse) ProtoMessage() {}

func (x *ExtractTemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractTemplateResponse.ProtoReflect.Descriptor instead.
func (*ExtractTemplateResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{34}
}

func (x *ExtractTemplateResponse) GetFields() []*MarketplaceField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ExtractTemplateResponse) GetColumnCount() int32 {
	if x != nil {
		return x.ColumnCount
	}
	return 0
}

type DeleteFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldsRequest) Reset() {
	*x = DeleteFieldsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldsRequest) ProtoMessage() {}

func (x *DeleteFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldsRequest.ProtoReflect.Descriptor instead.
func (*DeleteFieldsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{35}
}

func (x *DeleteFieldsRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

func (x *DeleteFieldsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type DeleteFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeletedCount  int32                  `protobuf:"varint,1,opt,name=deleted_count,json=deletedCount,proto3" json:"deleted_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldsResponse) Reset() {
	*x = DeleteFieldsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldsResponse) ProtoMessage() {}

func (x *DeleteFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldsResponse.ProtoReflect.Descriptor instead.
func (*DeleteFieldsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{36}
}

func (x *DeleteFieldsResponse) GetDeletedCount() int32 {
	if x != nil {
		return x.DeletedCount
	}
	return 0
}

type CategorySummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	FieldCount    int32                  `protobuf:"varint,2,opt,name=field_count,json=fieldCount,proto3" json:"field_count,omitempty"`
	RequiredCount int32                  `protobuf:"varint,3,opt,name=required_count,json=requiredCount,proto3" json:"required_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategorySummary) Reset() {
	*x = CategorySummary{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategorySummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategorySummary) ProtoMessage() {}

func (x *CategorySummary) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategorySummary.ProtoReflect.Descriptor instead.
func (*CategorySummary) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{37}
}

func (x *CategorySummary) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategorySummary) GetFieldCount() int32 {
	if x != nil {
		return x.FieldCount
	}
	return 0
}

func (x *CategorySummary) GetRequiredCount() int32 {
	if x != nil {
		return x.RequiredCount
	}
	return 0
}

type GetFieldsSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketplaceId string                 `protobuf:"bytes,1,opt,name=marketplace_id,json=marketplaceId,proto3" json:"marketplace_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFieldsSummaryRequest) Reset() {
	*x = GetFieldsSummaryRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFieldsSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFieldsSummaryRequest) ProtoMessage() {}

func (x *GetFieldsSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFieldsSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetFieldsSummaryRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{38}
}

func (x *GetFieldsSummaryRequest) GetMarketplaceId() string {
	if x != nil {
		return x.MarketplaceId
	}
	return ""
}

type GetFieldsSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*CategorySummary     `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFieldsSummaryResponse) Reset() {
	*x = GetFieldsSummaryResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFieldsSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFieldsSummaryResponse) ProtoMessage() {}

func (x *GetFieldsSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFieldsSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetFieldsSummaryResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{39}
}

func (x *GetFieldsSummaryResponse) GetCategories() []*CategorySummary {
	if x != nil {
		return x.Categories
	}
	return nil
}

type SuggestMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsRequest) Reset() {
	*x = SuggestMappingsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsRequest) ProtoMessage() {}

func (x *SuggestMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsRequest.ProtoReflect.Descriptor instead.
func (*SuggestMappingsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{40}
}

func (x *SuggestMappingsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type SuggestMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suggestions   []*Suggestion          `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestMappingsResponse) Reset() {
	*x = SuggestMappingsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestMappingsResponse) ProtoMessage() {}

func (x *SuggestMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestMappingsResponse.ProtoReflect.Descriptor instead.
func (*SuggestMappingsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{41}
}

func (x *SuggestMappingsResponse) GetSuggestions() []*Suggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type MappingEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserColumn    string                 `protobuf:"bytes,1,opt,name=user_column,json=userColumn,proto3" json:"user_column,omitempty"`
	FieldName     *string                `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3,oneof" json:"field_name,omitempty"` // unset = explicitly unmapped
	FieldId       string                 `protobuf:"bytes,3,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	Origin        string                 `protobuf:"bytes,4,opt,name=origin,proto3" json:"origin,omitempty"` // "suggested" | "manual"
	Confidence    *float32               `protobuf:"fixed32,5,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MappingEntry) Reset() {
	*x = MappingEntry{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingEntry) ProtoMessage() {}

func (x *MappingEntry) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingEntry.ProtoReflect.Descriptor instead.
func (*MappingEntry) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{42}
}

func (x *MappingEntry) GetUserColumn() string {
	if x != nil {
		return x.UserColumn
	}
	return ""
}

func (x *MappingEntry) GetFieldName() string {
	if x != nil && x.FieldName != nil {
		return *x.FieldName
	}
	return ""
}

func (x *MappingEntry) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *MappingEntry) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *MappingEntry) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

type SaveMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Entries       []*MappingEntry        `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveMappingsRequest) Reset() {
	*x = SaveMappingsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveMappingsRequest) ProtoMessage() {}

func (x *SaveMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveMappingsRequest.ProtoReflect.Descriptor instead.
func (*SaveMappingsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{43}
}

func (x *SaveMappingsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SaveMappingsRequest) GetEntries() []*MappingEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type SaveMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mappings      []*FieldMapping        `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveMappingsResponse) Reset() {
	*x = SaveMappingsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveMappingsResponse) ProtoMessage() {}

func (x *SaveMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveMappingsResponse.ProtoReflect.Descriptor instead.
func (*SaveMappingsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{44}
}

func (x *SaveMappingsResponse) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

type GetMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMappingsRequest) Reset() {
	*x = GetMappingsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMappingsRequest) ProtoMessage() {}

func (x *GetMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMappingsRequest.ProtoReflect.Descriptor instead.
func (*GetMappingsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{45}
}

func (x *GetMappingsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mappings      []*FieldMapping        `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMappingsResponse) Reset() {
	*x = GetMappingsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMappingsResponse) ProtoMessage() {}

func (x *GetMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMappingsResponse.ProtoReflect.Descriptor instead.
func (*GetMappingsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{46}
}

func (x *GetMappingsResponse) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

type GenerateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"` // "csv" | "xlsx"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateRequest) Reset() {
	*x = GenerateRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateRequest) ProtoMessage() {}

func (x *GenerateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateRequest.ProtoReflect.Descriptor instead.
func (*GenerateRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{47}
}

func (x *GenerateRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *GenerateRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type GenerateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	File          *GeneratedFile         `protobuf:"bytes,2,opt,name=file,proto3" json:"file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateResponse) Reset() {
	*x = GenerateResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateResponse) ProtoMessage() {}

func (x *GenerateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateResponse.ProtoReflect.Descriptor instead.
func (*GenerateResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{48}
}

func (x *GenerateResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *GenerateResponse) GetFile() *GeneratedFile {
	if x != nil {
		return x.File
	}
	return nil
}

type ListGeneratedFilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGeneratedFilesRequest) Reset() {
	*x = ListGeneratedFilesRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGeneratedFilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGeneratedFilesRequest) ProtoMessage() {}

func (x *ListGeneratedFilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGeneratedFilesRequest.ProtoReflect.Descriptor instead.
func (*ListGeneratedFilesRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{49}
}

func (x *ListGeneratedFilesRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListGeneratedFilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*GeneratedFile       `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGeneratedFilesResponse) Reset() {
	*x = ListGeneratedFilesResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGeneratedFilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGeneratedFilesResponse) ProtoMessage() {}

func (x *ListGeneratedFilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGeneratedFilesResponse.ProtoReflect.Descriptor instead.
func (*ListGeneratedFilesResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{50}
}

func (x *ListGeneratedFilesResponse) GetFiles() []*GeneratedFile {
	if x != nil {
		return x.Files
	}
	return nil
}

var File_catalog_v1_catalog_proto protoreflect.FileDescriptor

const file_catalog_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x18catalog/v1/catalog.proto\x12\n" +
	"catalog.v1\"\xa1\x01\n" +
	"\vMarketplace\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fdisplay_name\x18\x03 \x01(\tR\vdisplayName\x12,\n" +
	"\x12template_file_path\x18\x04 \x01(\tR\x10templateFilePath\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"\xe4\x02\n" +
	"\x10MarketplaceField\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0emarketplace_id\x18\x02 \x01(\tR\rmarketplaceId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x03 \x01(\tR\tfieldName\x12!\n" +
	"\fdisplay_name\x18\x04 \x01(\tR\vdisplayName\x12\x1f\n" +
	"\vis_required\x18\x05 \x01(\bR\n" +
	"isRequired\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12#\n" +
	"\rsample_values\x18\a \x03(\tR\fsampleValues\x12$\n" +
	"\vfield_order\x18\b \x01(\x05H\x00R\n" +
	"fieldOrder\x88\x01\x01\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAtB\x0e\n" +
	"\f_field_order\"G\n" +
	"\fSourceColumn\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rsample_values\x18\x02 \x03(\tR\fsampleValues\"\xdc\x02\n" +
	"\rUploadSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x11original_filename\x18\x02 \x01(\tR\x10originalFilename\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\x12%\n" +
	"\x0emarketplace_id\x18\x04 \x01(\tR\rmarketplaceId\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1b\n" +
	"\trow_count\x18\x06 \x01(\x05R\browCount\x12;\n" +
	"\fuser_columns\x18\a \x03(\v2\x18.catalog.v1.SourceColumnR\vuserColumns\x12\x1a\n" +
	"\bcategory\x18\b \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\x8d\x03\n" +
	"\n" +
	"SessionRow\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x1b\n" +
	"\trow_index\x18\x03 \x01(\x05R\browIndex\x124\n" +
	"\x04data\x18\x04 \x03(\v2 .catalog.v1.SessionRow.DataEntryR\x04data\x12G\n" +
	"\vedited_data\x18\x05 \x03(\v2&.catalog.v1.SessionRow.EditedDataEntryR\n" +
	"editedData\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\x1a7\n" +
	"\tDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1a=\n" +
	"\x0fEditedDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x9f\x02\n" +
	"\fFieldMapping\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vuser_column\x18\x03 \x01(\tR\n" +
	"userColumn\x12\x19\n" +
	"\bfield_id\x18\x04 \x01(\tR\afieldId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x05 \x01(\tR\tfieldName\x12\x16\n" +
	"\x06origin\x18\x06 \x01(\tR\x06origin\x12#\n" +
	"\n" +
	"confidence\x18\a \x01(\x02H\x00R\n" +
	"confidence\x88\x01\x01\x12\x1a\n" +
	"\bposition\x18\b \x01(\x05R\bposition\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAtB\r\n" +
	"\v_confidence\"\xbc\x01\n" +
	"\rGeneratedFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\x12#\n" +
	"\routput_format\x18\x04 \x01(\tR\foutputFormat\x12\x1b\n" +
	"\trow_count\x18\x05 \x01(\x05R\browCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\x80\x01\n" +
	"\n" +
	"Suggestion\x12\x1f\n" +
	"\vuser_column\x18\x01 \x01(\tR\n" +
	"userColumn\x12\"\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tH\x00R\tfieldName\x88\x01\x01\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidenceB\r\n" +
	"\v_field_name\"b\n" +
	"\rUploadRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\"E\n" +
	"\x0eUploadResponse\x123\n" +
	"\asession\x18\x01 \x01(\v2\x19.catalog.v1.UploadSessionR\asession\"2\n" +
	"\x11GetSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"I\n" +
	"\x12GetSessionResponse\x123\n" +
	"\asession\x18\x01 \x01(\v2\x19.catalog.v1.UploadSessionR\asession\"C\n" +
	"\x13ListSessionsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"M\n" +
	"\x14ListSessionsResponse\x125\n" +
	"\bsessions\x18\x01 \x03(\v2\x19.catalog.v1.UploadSessionR\bsessions\"|\n" +
	"\x18AssignMarketplaceRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12%\n" +
	"\x0emarketplace_id\x18\x02 \x01(\tR\rmarketplaceId\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"P\n" +
	"\x19AssignMarketplaceResponse\x123\n" +
	"\asession\x18\x01 \x01(\v2\x19.catalog.v1.UploadSessionR\asession\"^\n" +
	"\x0fListRowsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"T\n" +
	"\x10ListRowsResponse\x12*\n" +
	"\x04rows\x18\x01 \x03(\v2\x16.catalog.v1.SessionRowR\x04rows\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\xbd\x01\n" +
	"\x0eEditRowRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x15\n" +
	"\x06row_id\x18\x02 \x01(\tR\x05rowId\x12;\n" +
	"\x05edits\x18\x03 \x03(\v2%.catalog.v1.EditRowRequest.EditsEntryR\x05edits\x1a8\n" +
	"\n" +
	"EditsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\";\n" +
	"\x0fEditRowResponse\x12(\n" +
	"\x03row\x18\x01 \x01(\v2\x16.catalog.v1.SessionRowR\x03row\"Q\n" +
	"\x18CreateMarketplaceRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\"V\n" +
	"\x19CreateMarketplaceResponse\x129\n" +
	"\vmarketplace\x18\x01 \x01(\v2\x17.catalog.v1.MarketplaceR\vmarketplace\"\x19\n" +
	"\x17ListMarketplacesRequest\"W\n" +
	"\x18ListMarketplacesResponse\x12;\n" +
	"\fmarketplaces\x18\x01 \x03(\v2\x17.catalog.v1.MarketplaceR\fmarketplaces\">\n" +
	"\x15GetMarketplaceRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\"S\n" +
	"\x16GetMarketplaceResponse\x129\n" +
	"\vmarketplace\x18\x01 \x01(\v2\x17.catalog.v1.MarketplaceR\vmarketplace\"A\n" +
	"\x18DeleteMarketplaceRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\"\x1b\n" +
	"\x19DeleteMarketplaceResponse\"V\n" +
	"\x11ListFieldsRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\"J\n" +
	"\x12ListFieldsResponse\x124\n" +
	"\x06fields\x18\x01 \x03(\v2\x1c.catalog.v1.MarketplaceFieldR\x06fields\"\xf9\x01\n" +
	"\vFieldUpdate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12$\n" +
	"\vis_required\x18\x02 \x01(\bH\x00R\n" +
	"isRequired\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01\x12&\n" +
	"\fdisplay_name\x18\x04 \x01(\tH\x02R\vdisplayName\x88\x01\x01\x12$\n" +
	"\vfield_order\x18\x05 \x01(\x05H\x03R\n" +
	"fieldOrder\x88\x01\x01B\x0e\n" +
	"\f_is_requiredB\x0e\n" +
	"\f_descriptionB\x0f\n" +
	"\r_display_nameB\x0e\n" +
	"\f_field_order\"H\n" +
	"\x13UpdateFieldsRequest\x121\n" +
	"\aupdates\x18\x01 \x03(\v2\x17.catalog.v1.FieldUpdateR\aupdates\"L\n" +
	"\x14UpdateFieldsResponse\x124\n" +
	"\x06fields\x18\x01 \x03(\v2\x1c.catalog.v1.MarketplaceFieldR\x06fields\"\x91\x01\n" +
	"\x16ExtractTemplateRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"r\n" +
	"\x17ExtractTemplateResponse\x124\n" +
	"\x06fields\x18\x01 \x03(\v2\x1c.catalog.v1.MarketplaceFieldR\x06fields\x12!\n" +
	"\fcolumn_count\x18\x02 \x01(\x05R\vcolumnCount\"X\n" +
	"\x13DeleteFieldsRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\";\n" +
	"\x14DeleteFieldsResponse\x12#\n" +
	"\rdeleted_count\x18\x01 \x01(\x05R\fdeletedCount\"u\n" +
	"\x0fCategorySummary\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1f\n" +
	"\vfield_count\x18\x02 \x01(\x05R\n" +
	"fieldCount\x12%\n" +
	"\x0erequired_count\x18\x03 \x01(\x05R\rrequiredCount\"@\n" +
	"\x17GetFieldsSummaryRequest\x12%\n" +
	"\x0emarketplace_id\x18\x01 \x01(\tR\rmarketplaceId\"W\n" +
	"\x18GetFieldsSummaryResponse\x12;\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x1b.catalog.v1.CategorySummaryR\n" +
	"categories\"7\n" +
	"\x16SuggestMappingsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"S\n" +
	"\x17SuggestMappingsResponse\x128\n" +
	"\vsuggestions\x18\x01 \x03(\v2\x16.catalog.v1.SuggestionR\vsuggestions\"\xc9\x01\n" +
	"\fMappingEntry\x12\x1f\n" +
	"\vuser_column\x18\x01 \x01(\tR\n" +
	"userColumn\x12\"\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tH\x00R\tfieldName\x88\x01\x01\x12\x19\n" +
	"\bfield_id\x18\x03 \x01(\tR\afieldId\x12\x16\n" +
	"\x06origin\x18\x04 \x01(\tR\x06origin\x12#\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02H\x01R\n" +
	"confidence\x88\x01\x01B\r\n" +
	"\v_field_nameB\r\n" +
	"\v_confidence\"h\n" +
	"\x13SaveMappingsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x122\n" +
	"\aentries\x18\x02 \x03(\v2\x18.catalog.v1.MappingEntryR\aentries\"L\n" +
	"\x14SaveMappingsResponse\x124\n" +
	"\bmappings\x18\x01 \x03(\v2\x18.catalog.v1.FieldMappingR\bmappings\"3\n" +
	"\x12GetMappingsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"K\n" +
	"\x13GetMappingsResponse\x124\n" +
	"\bmappings\x18\x01 \x03(\v2\x18.catalog.v1.FieldMappingR\bmappings\"H\n" +
	"\x0fGenerateRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"[\n" +
	"\x10GenerateResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12-\n" +
	"\x04file\x18\x02 \x01(\v2\x19.catalog.v1.GeneratedFileR\x04file\":\n" +
	"\x19ListGeneratedFilesRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"M\n" +
	"\x1aListGeneratedFilesResponse\x12/\n" +
	"\x05files\x18\x01 \x03(\v2\x19.catalog.v1.GeneratedFileR\x05files2\xdf\x03\n" +
	"\x0fSessionsService\x12?\n" +
	"\x06Upload\x12\x19.catalog.v1.UploadRequest\x1a\x1a.catalog.v1.UploadResponse\x12K\n" +
	"\n" +
	"GetSession\x12\x1d.catalog.v1.GetSessionRequest\x1a\x1e.catalog.v1.GetSessionResponse\x12Q\n" +
	"\fListSessions\x12\x1f.catalog.v1.ListSessionsRequest\x1a .catalog.v1.ListSessionsResponse\x12`\n" +
	"\x11AssignMarketplace\x12$.catalog.v1.AssignMarketplaceRequest\x1a%.catalog.v1.AssignMarketplaceResponse\x12E\n" +
	"\bListRows\x12\x1b.catalog.v1.ListRowsRequest\x1a\x1c.catalog.v1.ListRowsResponse\x12B\n" +
	"\aEditRow\x12\x1a.catalog.v1.EditRowRequest\x1a\x1b.catalog.v1.EditRowResponse2\xbf\x06\n" +
	"\x13MarketplacesService\x12`\n" +
	"\x11CreateMarketplace\x12$.catalog.v1.CreateMarketplaceRequest\x1a%.catalog.v1.CreateMarketplaceResponse\x12]\n" +
	"\x10ListMarketplaces\x12#.catalog.v1.ListMarketplacesRequest\x1a$.catalog.v1.ListMarketplacesResponse\x12W\n" +
	"\x0eGetMarketplace\x12!.catalog.v1.GetMarketplaceRequest\x1a\".catalog.v1.GetMarketplaceResponse\x12`\n" +
	"\x11DeleteMarketplace\x12$.catalog.v1.DeleteMarketplaceRequest\x1a%.catalog.v1.DeleteMarketplaceResponse\x12K\n" +
	"\n" +
	"ListFields\x12\x1d.catalog.v1.ListFieldsRequest\x1a\x1e.catalog.v1.ListFieldsResponse\x12Q\n" +
	"\fUpdateFields\x12\x1f.catalog.v1.UpdateFieldsRequest\x1a .catalog.v1.UpdateFieldsResponse\x12Z\n" +
	"\x0fExtractTemplate\x12\".catalog.v1.ExtractTemplateRequest\x1a#.catalog.v1.ExtractTemplateResponse\x12Q\n" +
	"\fDeleteFields\x12\x1f.catalog.v1.DeleteFieldsRequest\x1a .catalog.v1.DeleteFieldsResponse\x12]\n" +
	"\x10GetFieldsSummary\x12#.catalog.v1.GetFieldsSummaryRequest\x1a$.catalog.v1.GetFieldsSummaryResponse2\x90\x02\n" +
	"\x0fMappingsService\x12Z\n" +
	"\x0fSuggestMappings\x12\".catalog.v1.SuggestMappingsRequest\x1a#.catalog.v1.SuggestMappingsResponse\x12Q\n" +
	"\fSaveMappings\x12\x1f.catalog.v1.SaveMappingsRequest\x1a .catalog.v1.SaveMappingsResponse\x12N\n" +
	"\vGetMappings\x12\x1e.catalog.v1.GetMappingsRequest\x1a\x1f.catalog.v1.GetMappingsResponse2\xbb\x01\n" +
	"\rExportService\x12E\n" +
	"\bGenerate\x12\x1b.catalog.v1.GenerateRequest\x1a\x1c.catalog.v1.GenerateResponse\x12c\n" +
	"\x12ListGeneratedFiles\x12%.catalog.v1.ListGeneratedFilesRequest\x1a&.catalog.v1.ListGeneratedFilesResponseBHZFgithub.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1;catalogv1b\x06proto3"

var (
	file_catalog_v1_catalog_proto_rawDescOnce sync.Once
	file_catalog_v1_catalog_proto_rawDescData []byte
)

func file_catalog_v1_catalog_proto_rawDescGZIP() []byte {
	file_catalog_v1_catalog_proto_rawDescOnce.Do(func() {
		file_catalog_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)))
	})
	return file_catalog_v1_catalog_proto_rawDescData
}

var file_catalog_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 54)
var file_catalog_v1_catalog_proto_goTypes = []any{
	(*Marketplace)(nil),                // 0: catalog.v1.Marketplace
	(*MarketplaceField)(nil),           // 1: catalog.v1.MarketplaceField
	(*SourceColumn)(nil),               // 2: catalog.v1.SourceColumn
	(*UploadSession)(nil),              // 3: catalog.v1.UploadSession
	(*SessionRow)(nil),                 // 4: catalog.v1.SessionRow
	(*FieldMapping)(nil),               // 5: catalog.v1.FieldMapping
	(*GeneratedFile)(nil),              // 6: catalog.v1.GeneratedFile
	(*Suggestion)(nil),                 // 7: catalog.v1.Suggestion
	(*UploadRequest)(nil),              // 8: catalog.v1.UploadRequest
	(*UploadResponse)(nil),             // 9: catalog.v1.UploadResponse
	(*GetSessionRequest)(nil),          // 10: catalog.v1.GetSessionRequest
	(*GetSessionResponse)(nil),         // 11: catalog.v1.GetSessionResponse
	(*ListSessionsRequest)(nil),        // 12: catalog.v1.ListSessionsRequest
	(*ListSessionsResponse)(nil),       // 13: catalog.v1.ListSessionsResponse
	(*AssignMarketplaceRequest)(nil),   // 14: catalog.v1.AssignMarketplaceRequest
	(*AssignMarketplaceResponse)(nil),  // 15: catalog.v1.AssignMarketplaceResponse
	(*ListRowsRequest)(nil),            // 16: catalog.v1.ListRowsRequest
	(*ListRowsResponse)(nil),           // 17: catalog.v1.ListRowsResponse
	(*EditRowRequest)(nil),             // 18: catalog.v1.EditRowRequest
	(*EditRowResponse)(nil),            // 19: catalog.v1.EditRowResponse
	(*CreateMarketplaceRequest)(nil),   // 20: catalog.v1.CreateMarketplaceRequest
	(*CreateMarketplaceResponse)(nil),  // 21: catalog.v1.CreateMarketplaceResponse
	(*ListMarketplacesRequest)(nil),    // 22: catalog.v1.ListMarketplacesRequest
	(*ListMarketplacesResponse)(nil),   // 23: catalog.v1.ListMarketplacesResponse
	(*GetMarketplaceRequest)(nil),      // 24: catalog.v1.GetMarketplaceRequest
	(*GetMarketplaceResponse)(nil),     // 25: catalog.v1.GetMarketplaceResponse
	(*DeleteMarketplaceRequest)(nil),   // 26: catalog.v1.DeleteMarketplaceRequest
	(*DeleteMarketplaceResponse)(nil),  // 27: catalog.v1.DeleteMarketplaceResponse
	(*ListFieldsRequest)(nil),          // 28: catalog.v1.ListFieldsRequest
	(*ListFieldsResponse)(nil),         // 29: catalog.v1.ListFieldsResponse
	(*FieldUpdate)(nil),                // 30: catalog.v1.FieldUpdate
	(*UpdateFieldsRequest)(nil),        // 31: catalog.v1.UpdateFieldsRequest
	(*UpdateFieldsResponse)(nil),       // 32: catalog.v1.UpdateFieldsResponse
	(*ExtractTemplateRequest)(nil),     // 33: catalog.v1.ExtractTemplateRequest
	(*ExtractTemplateResponse)(nil),    // 34: catalog.v1.ExtractTemplateResponse
	(*DeleteFieldsRequest)(nil),        // 35: catalog.v1.DeleteFieldsRequest
	(*DeleteFieldsResponse)(nil),       // 36: catalog.v1.DeleteFieldsResponse
	(*CategorySummary)(nil),            // 37: catalog.v1.CategorySummary
	(*GetFieldsSummaryRequest)(nil),    // 38: catalog.v1.GetFieldsSummaryRequest
	(*GetFieldsSummaryResponse)(nil),   // 39: catalog.v1.GetFieldsSummaryResponse
	(*SuggestMappingsRequest)(nil),     // 40: catalog.v1.SuggestMappingsRequest
	(*SuggestMappingsResponse)(nil),    // 41: catalog.v1.SuggestMappingsResponse
	(*MappingEntry)(nil),               // 42: catalog.v1.MappingEntry
	(*SaveMappingsRequest)(nil),        // 43: catalog.v1.SaveMappingsRequest
	(*SaveMappingsResponse)(nil),       // 44: catalog.v1.SaveMappingsResponse
	(*GetMappingsRequest)(nil),         // 45: catalog.v1.GetMappingsRequest
	(*GetMappingsResponse)(nil),        // 46: catalog.v1.GetMappingsResponse
	(*GenerateRequest)(nil),            // 47: catalog.v1.GenerateRequest
	(*GenerateResponse)(nil),           // 48: catalog.v1.GenerateResponse
	(*ListGeneratedFilesRequest)(nil),  // 49: catalog.v1.ListGeneratedFilesRequest
	(*ListGeneratedFilesResponse)(nil), // 50: catalog.v1.ListGeneratedFilesResponse
	nil,                                // 51: catalog.v1.SessionRow.DataEntry
	nil,                                // 52: catalog.v1.SessionRow.EditedDataEntry
	nil,                                // 53: catalog.v1.EditRowRequest.EditsEntry
}
var file_catalog_v1_catalog_proto_depIdxs = []int32{
	2,  // 0: catalog.v1.UploadSession.user_columns:type_name -> catalog.v1.SourceColumn
	51, // 1: catalog.v1.SessionRow.data:type_name -> catalog.v1.SessionRow.DataEntry
	52, // 2: catalog.v1.SessionRow.edited_data:type_name -> catalog.v1.SessionRow.EditedDataEntry
	3,  // 3: catalog.v1.UploadResponse.session:type_name -> catalog.v1.UploadSession
	3,  // 4: catalog.v1.GetSessionResponse.session:type_name -> catalog.v1.UploadSession
	3,  // 5: catalog.v1.ListSessionsResponse.sessions:type_name -> catalog.v1.UploadSession
	3,  // 6: catalog.v1.AssignMarketplaceResponse.session:type_name -> catalog.v1.UploadSession
	4,  // 7: catalog.v1.ListRowsResponse.rows:type_name -> catalog.v1.SessionRow
	53, // 8: catalog.v1.EditRowRequest.edits:type_name -> catalog.v1.EditRowRequest.EditsEntry
	4,  // 9: catalog.v1.EditRowResponse.row:type_name -> catalog.v1.SessionRow
	0,  // 10: catalog.v1.CreateMarketplaceResponse.marketplace:type_name -> catalog.v1.Marketplace
	0,  // 11: catalog.v1.ListMarketplacesResponse.marketplaces:type_name -> catalog.v1.Marketplace
	0,  // 12: catalog.v1.GetMarketplaceResponse.marketplace:type_name -> catalog.v1.Marketplace
	1,  // 13: catalog.v1.ListFieldsResponse.fields:type_name -> catalog.v1.MarketplaceField
	30, // 14: catalog.v1.UpdateFieldsRequest.updates:type_name -> catalog.v1.FieldUpdate
	1,  // 15: catalog.v1.UpdateFieldsResponse.fields:type_name -> catalog.v1.MarketplaceField
	1,  // 16: catalog.v1.ExtractTemplateResponse.fields:type_name -> catalog.v1.MarketplaceField
	37, // 17: catalog.v1.GetFieldsSummaryResponse.categories:type_name -> catalog.v1.CategorySummary
	7,  // 18: catalog.v1.SuggestMappingsResponse.suggestions:type_name -> catalog.v1.Suggestion
	42, // 19: catalog.v1.SaveMappingsRequest.entries:type_name -> catalog.v1.MappingEntry
	5,  // 20: catalog.v1.SaveMappingsResponse.mappings:type_name -> catalog.v1.FieldMapping
	5,  // 21: catalog.v1.GetMappingsResponse.mappings:type_name -> catalog.v1.FieldMapping
	6,  // 22: catalog.v1.GenerateResponse.file:type_name -> catalog.v1.GeneratedFile
	6,  // 23: catalog.v1.ListGeneratedFilesResponse.files:type_name -> catalog.v1.GeneratedFile
	8,  // 24: catalog.v1.SessionsService.Upload:input_type -> catalog.v1.UploadRequest
	10, // 25: catalog.v1.SessionsService.GetSession:input_type -> catalog.v1.GetSessionRequest
	12, // 26: catalog.v1.SessionsService.ListSessions:input_type -> catalog.v1.ListSessionsRequest
	14, // 27: catalog.v1.SessionsService.AssignMarketplace:input_type -> catalog.v1.AssignMarketplaceRequest
	16, // 28: catalog.v1.SessionsService.ListRows:input_type -> catalog.v1.ListRowsRequest
	18, // 29: catalog.v1.SessionsService.EditRow:input_type -> catalog.v1.EditRowRequest
	20, // 30: catalog.v1.MarketplacesService.CreateMarketplace:input_type -> catalog.v1.CreateMarketplaceRequest
	22, // 31: catalog.v1.MarketplacesService.ListMarketplaces:input_type -> catalog.v1.ListMarketplacesRequest
	24, // 32: catalog.v1.MarketplacesService.GetMarketplace:input_type -> catalog.v1.GetMarketplaceRequest
	26, // 33: catalog.v1.MarketplacesService.DeleteMarketplace:input_type -> catalog.v1.DeleteMarketplaceRequest
	28, // 34: catalog.v1.MarketplacesService.ListFields:input_type -> catalog.v1.ListFieldsRequest
	31, // 35: catalog.v1.MarketplacesService.UpdateFields:input_type -> catalog.v1.UpdateFieldsRequest
	33, // 36: catalog.v1.MarketplacesService.ExtractTemplate:input_type -> catalog.v1.ExtractTemplateRequest
	35, // 37: catalog.v1.MarketplacesService.DeleteFields:input_type -> catalog.v1.DeleteFieldsRequest
	38, // 38: catalog.v1.MarketplacesService.GetFieldsSummary:input_type -> catalog.v1.GetFieldsSummaryRequest
	40, // 39: catalog.v1.MappingsService.SuggestMappings:input_type -> catalog.v1.SuggestMappingsRequest
	43, // 40: catalog.v1.MappingsService.SaveMappings:input_type -> catalog.v1.SaveMappingsRequest
	45, // 41: catalog.v1.MappingsService.GetMappings:input_type -> catalog.v1.GetMappingsRequest
	47, // 42: catalog.v1.ExportService.Generate:input_type -> catalog.v1.GenerateRequest
	49, // 43: catalog.v1.ExportService.ListGeneratedFiles:input_type -> catalog.v1.ListGeneratedFilesRequest
	9,  // 44: catalog.v1.SessionsService.Upload:output_type -> catalog.v1.UploadResponse
	11, // 45: catalog.v1.SessionsService.GetSession:output_type -> catalog.v1.GetSessionResponse
	13, // 46: catalog.v1.SessionsService.ListSessions:output_type -> catalog.v1.ListSessionsResponse
	15, // 47: catalog.v1.SessionsService.AssignMarketplace:output_type -> catalog.v1.AssignMarketplaceResponse
	17, // 48: catalog.v1.SessionsService.ListRows:output_type -> catalog.v1.ListRowsResponse
	19, // 49: catalog.v1.SessionsService.EditRow:output_type -> catalog.v1.EditRowResponse
	21, // 50: catalog.v1.MarketplacesService.CreateMarketplace:output_type -> catalog.v1.CreateMarketplaceResponse
	23, // 51: catalog.v1.MarketplacesService.ListMarketplaces:output_type -> catalog.v1.ListMarketplacesResponse
	25, // 52: catalog.v1.MarketplacesService.GetMarketplace:output_type -> catalog.v1.GetMarketplaceResponse
	27, // 53: catalog.v1.MarketplacesService.DeleteMarketplace:output_type -> catalog.v1.DeleteMarketplaceResponse
	29, // 54: catalog.v1.MarketplacesService.ListFields:output_type -> catalog.v1.ListFieldsResponse
	32, // 55: catalog.v1.MarketplacesService.UpdateFields:output_type -> catalog.v1.UpdateFieldsResponse
	34, // 56: catalog.v1.MarketplacesService.ExtractTemplate:output_type -> catalog.v1.ExtractTemplateResponse
	36, // 57: catalog.v1.MarketplacesService.DeleteFields:output_type -> catalog.v1.DeleteFieldsResponse
	39, // 58: catalog.v1.MarketplacesService.GetFieldsSummary:output_type -> catalog.v1.GetFieldsSummaryResponse
	41, // 59: catalog.v1.MappingsService.SuggestMappings:output_type -> catalog.v1.SuggestMappingsResponse
	44, // 60: catalog.v1.MappingsService.SaveMappings:output_type -> catalog.v1.SaveMappingsResponse
	46, // 61: catalog.v1.MappingsService.GetMappings:output_type -> catalog.v1.GetMappingsResponse
	48, // 62: catalog.v1.ExportService.Generate:output_type -> catalog.v1.GenerateResponse
	50, // 63: catalog.v1.ExportService.ListGeneratedFiles:output_type -> catalog.v1.ListGeneratedFilesResponse
	44, // [44:64] is the sub-list for method output_type
	24, // [24:44] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_catalog_v1_catalog_proto_init() }
func file_catalog_v1_catalog_proto_init() {
	if File_catalog_v1_catalog_proto != nil {
		return
	}
	file_catalog_v1_catalog_proto_msgTypes[1].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[5].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[7].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[30].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[42].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   54,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_catalog_v1_catalog_proto_goTypes,
		DependencyIndexes: file_catalog_v1_catalog_proto_depIdxs,
		MessageInfos:      file_catalog_v1_catalog_proto_msgTypes,
	}.Build()
	File_catalog_v1_catalog_proto = out.File
	file_catalog_v1_catalog_proto_goTypes = nil
	file_catalog_v1_catalog_proto_depIdxs = nil
}
