// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: rulestore.proto

package rulestorepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type GetActiveBundleRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClinicId       string                 `protobuf:"bytes,1,opt,name=clinic_id,json=clinicId,proto3" json:"clinic_id,omitempty"`
	IncludeHistory bool                   `protobuf:"varint,2,opt,name=include_history,json=includeHistory,proto3" json:"include_history,omitempty"`
	// history_limit caps returned prior versions; 0 means the server
	// default.
	HistoryLimit  int32 `protobuf:"varint,3,opt,name=history_limit,json=historyLimit,proto3" json:"history_limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveBundleRequest) Reset() {
	*x = GetActiveBundleRequest{}
	mi := &file_rulestore_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveBundleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveBundleRequest) ProtoMessage() {}

func (x *GetActiveBundleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rulestore_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveBundleRequest.ProtoReflect.Descriptor instead.
func (*GetActiveBundleRequest) Descriptor() ([]byte, []int) {
	return file_rulestore_proto_rawDescGZIP(), []int{0}
}

func (x *GetActiveBundleRequest) GetClinicId() string {
	if x != nil {
		return x.ClinicId
	}
	return ""
}

func (x *GetActiveBundleRequest) GetIncludeHistory() bool {
	if x != nil {
		return x.IncludeHistory
	}
	return false
}

func (x *GetActiveBundleRequest) GetHistoryLimit() int32 {
	if x != nil {
		return x.HistoryLimit
	}
	return 0
}

type GetActiveBundleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Active        *BundleSnapshot        `protobuf:"bytes,1,opt,name=active,proto3" json:"active,omitempty"`
	History       []*BundleSnapshot      `protobuf:"bytes,2,rep,name=history,proto3" json:"history,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveBundleResponse) Reset() {
	*x = GetActiveBundleResponse{}
	mi := &file_rulestore_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveBundleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveBundleResponse) ProtoMessage() {}

func (x *GetActiveBundleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rulestore_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveBundleResponse.ProtoReflect.Descriptor instead.
func (*GetActiveBundleResponse) Descriptor() ([]byte, []int) {
	return file_rulestore_proto_rawDescGZIP(), []int{1}
}

func (x *GetActiveBundleResponse) GetActive() *BundleSnapshot {
	if x != nil {
		return x.Active
	}
	return nil
}

func (x *GetActiveBundleResponse) GetHistory() []*BundleSnapshot {
	if x != nil {
		return x.History
	}
	return nil
}

type UpsertBundleRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	ClinicId string                 `protobuf:"bytes,1,opt,name=clinic_id,json=clinicId,proto3" json:"clinic_id,omitempty"`
	// bundle_json is the authored rule bundle document.
	BundleJson []byte `protobuf:"bytes,2,opt,name=bundle_json,json=bundleJson,proto3" json:"bundle_json,omitempty"`
	// status must be one of draft, staged, active.
	Status        string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	MetadataJson  []byte `protobuf:"bytes,4,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	ActorId       string `protobuf:"bytes,5,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertBundleRequest) Reset() {
	*x = UpsertBundleRequest{}
	mi := &file_rulestore_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertBundleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertBundleRequest) ProtoMessage() {}

func (x *UpsertBundleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rulestore_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertBundleRequest.ProtoReflect.Descriptor instead.
func (*UpsertBundleRequest) Descriptor() ([]byte, []int) {
	return file_rulestore_proto_rawDescGZIP(), []int{2}
}

func (x *UpsertBundleRequest) GetClinicId() string {
	if x != nil {
		return x.ClinicId
	}
	return ""
}

func (x *UpsertBundleRequest) GetBundleJson() []byte {
	if x != nil {
		return x.BundleJson
	}
	return nil
}

func (x *UpsertBundleRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpsertBundleRequest) GetMetadataJson() []byte {
	if x != nil {
		return x.MetadataJson
	}
	return nil
}

func (x *UpsertBundleRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type UpsertBundleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snapshot      *BundleSnapshot        `protobuf:"bytes,1,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertBundleResponse) Reset() {
	*x = UpsertBundleResponse{}
	mi := &file_rulestore_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertBundleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertBundleResponse) ProtoMessage() {}

func (x *UpsertBundleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rulestore_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertBundleResponse.ProtoReflect.Descriptor instead.
func (*UpsertBundleResponse) Descriptor() ([]byte, []int) {
	return file_rulestore_proto_rawDescGZIP(), []int{3}
}

func (x *UpsertBundleResponse) GetSnapshot() *BundleSnapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

type BundleSnapshot struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	SnapshotId string                 `protobuf:"bytes,1,opt,name=snapshot_id,json=snapshotId,proto3" json:"snapshot_id,omitempty"`
	ClinicId   string                 `protobuf:"bytes,2,opt,name=clinic_id,json=clinicId,proto3" json:"clinic_id,omitempty"`
	BundleId   string                 `protobuf:"bytes,3,opt,name=bundle_id,json=bundleId,proto3" json:"bundle_id,omitempty"`
	Version    int32                  `protobuf:"varint,4,opt,name=version,proto3" json:"version,omitempty"`
	Status     string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	// sha256 is computed over the canonical JSON encoding of the bundle.
	Sha256        string                 `protobuf:"bytes,6,opt,name=sha256,proto3" json:"sha256,omitempty"`
	BundleJson    []byte                 `protobuf:"bytes,7,opt,name=bundle_json,json=bundleJson,proto3" json:"bundle_json,omitempty"`
	MetadataJson  []byte                 `protobuf:"bytes,8,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	ActorId       string                 `protobuf:"bytes,9,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BundleSnapshot) Reset() {
	*x = BundleSnapshot{}
	mi := &file_rulestore_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BundleSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BundleSnapshot) ProtoMessage() {}

func (x *BundleSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_rulestore_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BundleSnapshot.ProtoReflect.Descriptor instead.
func (*BundleSnapshot) Descriptor() ([]byte, []int) {
	return file_rulestore_proto_rawDescGZIP(), []int{4}
}

func (x *BundleSnapshot) GetSnapshotId() string {
	if x != nil {
		return x.SnapshotId
	}
	return ""
}

func (x *BundleSnapshot) GetClinicId() string {
	if x != nil {
		return x.ClinicId
	}
	return ""
}

func (x *BundleSnapshot) GetBundleId() string {
	if x != nil {
		return x.BundleId
	}
	return ""
}

func (x *BundleSnapshot) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *BundleSnapshot) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BundleSnapshot) GetSha256() string {
	if x != nil {
		return x.Sha256
	}
	return ""
}

func (x *BundleSnapshot) GetBundleJson() []byte {
	if x != nil {
		return x.BundleJson
	}
	return nil
}

func (x *BundleSnapshot) GetMetadataJson() []byte {
	if x != nil {
		return x.MetadataJson
	}
	return nil
}

func (x *BundleSnapshot) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *BundleSnapshot) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

var File_rulestore_proto protoreflect.FileDescriptor

const file_rulestore_proto_rawDesc = "" +
	"\n" +
	"\x0frulestore.proto\x12\x13mediqo.rulestore.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x83\x01\n" +
	"\x16GetActiveBundleRequest\x12\x1b\n" +
	"\tclinic_id\x18\x01 \x01(\tR\bclinicId\x12'\n" +
	"\x0finclude_history\x18\x02 \x01(\bR\x0eincludeHistory\x12#\n" +
	"\rhistory_limit\x18\x03 \x01(\x05R\fhistoryLimit\"\x95\x01\n" +
	"\x17GetActiveBundleResponse\x12;\n" +
	"\x06active\x18\x01 \x01(\v2#.mediqo.rulestore.v1.BundleSnapshotR\x06active\x12=\n" +
	"\ahistory\x18\x02 \x03(\v2#.mediqo.rulestore.v1.BundleSnapshotR\ahistory\"\xab\x01\n" +
	"\x13UpsertBundleRequest\x12\x1b\n" +
	"\tclinic_id\x18\x01 \x01(\tR\bclinicId\x12\x1f\n" +
	"\vbundle_json\x18\x02 \x01(\fR\n" +
	"bundleJson\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12#\n" +
	"\rmetadata_json\x18\x04 \x01(\fR\fmetadataJson\x12\x19\n" +
	"\bactor_id\x18\x05 \x01(\tR\aactorId\"W\n" +
	"\x14UpsertBundleResponse\x12?\n" +
	"\bsnapshot\x18\x01 \x01(\v2#.mediqo.rulestore.v1.BundleSnapshotR\bsnapshot\"\xd1\x02\n" +
	"\x0eBundleSnapshot\x12\x1f\n" +
	"\vsnapshot_id\x18\x01 \x01(\tR\n" +
	"snapshotId\x12\x1b\n" +
	"\tclinic_id\x18\x02 \x01(\tR\bclinicId\x12\x1b\n" +
	"\tbundle_id\x18\x03 \x01(\tR\bbundleId\x12\x18\n" +
	"\aversion\x18\x04 \x01(\x05R\aversion\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x16\n" +
	"\x06sha256\x18\x06 \x01(\tR\x06sha256\x12\x1f\n" +
	"\vbundle_json\x18\a \x01(\fR\n" +
	"bundleJson\x12#\n" +
	"\rmetadata_json\x18\b \x01(\fR\fmetadataJson\x12\x19\n" +
	"\bactor_id\x18\t \x01(\tR\aactorId\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt2\xde\x01\n" +
	"\tRuleStore\x12l\n" +
	"\x0fGetActiveBundle\x12+.mediqo.rulestore.v1.GetActiveBundleRequest\x1a,.mediqo.rulestore.v1.GetActiveBundleResponse\x12c\n" +
	"\fUpsertBundle\x12(.mediqo.rulestore.v1.UpsertBundleRequest\x1a).mediqo.rulestore.v1.UpsertBundleResponseB,Z*github.com/mediqo/mediqo/proto/rulestorepbb\x06proto3"

var (
	file_rulestore_proto_rawDescOnce sync.Once
	file_rulestore_proto_rawDescData []byte
)

func file_rulestore_proto_rawDescGZIP() []byte {
	file_rulestore_proto_rawDescOnce.Do(func() {
		file_rulestore_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rulestore_proto_rawDesc), len(file_rulestore_proto_rawDesc)))
	})
	return file_rulestore_proto_rawDescData
}

var file_rulestore_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_rulestore_proto_goTypes = []any{
	(*GetActiveBundleRequest)(nil),  // 0: mediqo.rulestore.v1.GetActiveBundleRequest
	(*GetActiveBundleResponse)(nil), // 1: mediqo.rulestore.v1.GetActiveBundleResponse
	(*UpsertBundleRequest)(nil),     // 2: mediqo.rulestore.v1.UpsertBundleRequest
	(*UpsertBundleResponse)(nil),    // 3: mediqo.rulestore.v1.UpsertBundleResponse
	(*BundleSnapshot)(nil),          // 4: mediqo.rulestore.v1.BundleSnapshot
	(*timestamppb.Timestamp)(nil),   // 5: google.protobuf.Timestamp
}
var file_rulestore_proto_depIdxs = []int32{
	4, // 0: mediqo.rulestore.v1.GetActiveBundleResponse.active:type_name -> mediqo.rulestore.v1.BundleSnapshot
	4, // 1: mediqo.rulestore.v1.GetActiveBundleResponse.history:type_name -> mediqo.rulestore.v1.BundleSnapshot
	4, // 2: mediqo.rulestore.v1.UpsertBundleResponse.snapshot:type_name -> mediqo.rulestore.v1.BundleSnapshot
	5, // 3: mediqo.rulestore.v1.BundleSnapshot.created_at:type_name -> google.protobuf.Timestamp
	0, // 4: mediqo.rulestore.v1.RuleStore.GetActiveBundle:input_type -> mediqo.rulestore.v1.GetActiveBundleRequest
	2, // 5: mediqo.rulestore.v1.RuleStore.UpsertBundle:input_type -> mediqo.rulestore.v1.UpsertBundleRequest
	1, // 6: mediqo.rulestore.v1.RuleStore.GetActiveBundle:output_type -> mediqo.rulestore.v1.GetActiveBundleResponse
	3, // 7: mediqo.rulestore.v1.RuleStore.UpsertBundle:output_type -> mediqo.rulestore.v1.UpsertBundleResponse
	6, // [6:8] is the sub-list for method output_type
	4, // [4:6] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_rulestore_proto_init() }
func file_rulestore_proto_init() {
	if File_rulestore_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rulestore_proto_rawDesc), len(file_rulestore_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rulestore_proto_goTypes,
		DependencyIndexes: file_rulestore_proto_depIdxs,
		MessageInfos:      file_rulestore_proto_msgTypes,
	}.Build()
	File_rulestore_proto = out.File
	file_rulestore_proto_goTypes = nil
	file_rulestore_proto_depIdxs = nil
}
