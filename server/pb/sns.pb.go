// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: sns.proto

package pb

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

type Request struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Arguments     []string               `protobuf:"bytes,2,rep,name=arguments,proto3" json:"arguments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Request) Reset() {
	*x = Request{}
	mi := &file_sns_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Request) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Request) ProtoMessage() {}

func (x *Request) ProtoReflect() protoreflect.Message {
	mi := &file_sns_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Request.ProtoReflect.Descriptor instead.
func (*Request) Descriptor() ([]byte, []int) {
	return file_sns_proto_rawDescGZIP(), []int{0}
}

func (x *Request) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Request) GetArguments() []string {
	if x != nil {
		return x.Arguments
	}
	return nil
}

type Reply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Msg           string                 `protobuf:"bytes,1,opt,name=msg,proto3" json:"msg,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Reply) Reset() {
	*x = Reply{}
	mi := &file_sns_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Reply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Reply) ProtoMessage() {}

func (x *Reply) ProtoReflect() protoreflect.Message {
	mi := &file_sns_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Reply.ProtoReflect.Descriptor instead.
func (*Reply) Descriptor() ([]byte, []int) {
	return file_sns_proto_rawDescGZIP(), []int{1}
}

func (x *Reply) GetMsg() string {
	if x != nil {
		return x.Msg
	}
	return ""
}

type ListReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AllUsers      []string               `protobuf:"bytes,1,rep,name=all_users,json=allUsers,proto3" json:"all_users,omitempty"`
	Followers     []string               `protobuf:"bytes,2,rep,name=followers,proto3" json:"followers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReply) Reset() {
	*x = ListReply{}
	mi := &file_sns_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReply) ProtoMessage() {}

func (x *ListReply) ProtoReflect() protoreflect.Message {
	mi := &file_sns_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReply.ProtoReflect.Descriptor instead.
func (*ListReply) Descriptor() ([]byte, []int) {
	return file_sns_proto_rawDescGZIP(), []int{2}
}

func (x *ListReply) GetAllUsers() []string {
	if x != nil {
		return x.AllUsers
	}
	return nil
}

func (x *ListReply) GetFollowers() []string {
	if x != nil {
		return x.Followers
	}
	return nil
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Msg           string                 `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_sns_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_sns_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_sns_proto_rawDescGZIP(), []int{3}
}

func (x *Message) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Message) GetMsg() string {
	if x != nil {
		return x.Msg
	}
	return ""
}

func (x *Message) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

var File_sns_proto protoreflect.FileDescriptor

const file_sns_proto_rawDesc = "" +
	"\n" +
	"\tsns.proto\x12\x03sns\x1a\x1fgoogle/protobuf/timestamp.proto\"C\n" +
	"\aRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1c\n" +
	"\targuments\x18\x02 \x03(\tR\targuments\"\x19\n" +
	"\x05Reply\x12\x10\n" +
	"\x03msg\x18\x01 \x01(\tR\x03msg\"F\n" +
	"\tListReply\x12\x1b\n" +
	"\tall_users\x18\x01 \x03(\tR\ballUsers\x12\x1c\n" +
	"\tfollowers\x18\x02 \x03(\tR\tfollowers\"q\n" +
	"\aMessage\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x10\n" +
	"\x03msg\x18\x02 \x01(\tR\x03msg\x128\n" +
	"\ttimestamp\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp2\xd5\x01\n" +
	"\n" +
	"SNSService\x12#\n" +
	"\x05Login\x12\f.sns.Request\x1a\n" +
	".sns.Reply\"\x00\x12&\n" +
	"\x04List\x12\f.sns.Request\x1a\x0e.sns.ListReply\"\x00\x12$\n" +
	"\x06Follow\x12\f.sns.Request\x1a\n" +
	".sns.Reply\"\x00\x12&\n" +
	"\bUnfollow\x12\f.sns.Request\x1a\n" +
	".sns.Reply\"\x00\x12,\n" +
	"\bTimeline\x12\f.sns.Message\x1a\f.sns.Message\"\x00(\x010\x01B\x11Z\x0fchirp/server/pbb\x06proto3"

var (
	file_sns_proto_rawDescOnce sync.Once
	file_sns_proto_rawDescData []byte
)

func file_sns_proto_rawDescGZIP() []byte {
	file_sns_proto_rawDescOnce.Do(func() {
		file_sns_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sns_proto_rawDesc), len(file_sns_proto_rawDesc)))
	})
	return file_sns_proto_rawDescData
}

var file_sns_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_sns_proto_goTypes = []any{
	(*Request)(nil),               // 0: sns.Request
	(*Reply)(nil),                 // 1: sns.Reply
	(*ListReply)(nil),             // 2: sns.ListReply
	(*Message)(nil),               // 3: sns.Message
	(*timestamppb.Timestamp)(nil), // 4: google.protobuf.Timestamp
}
var file_sns_proto_depIdxs = []int32{
	4, // 0: sns.Message.timestamp:type_name -> google.protobuf.Timestamp
	0, // 1: sns.SNSService.Login:input_type -> sns.Request
	0, // 2: sns.SNSService.List:input_type -> sns.Request
	0, // 3: sns.SNSService.Follow:input_type -> sns.Request
	0, // 4: sns.SNSService.Unfollow:input_type -> sns.Request
	3, // 5: sns.SNSService.Timeline:input_type -> sns.Message
	1, // 6: sns.SNSService.Login:output_type -> sns.Reply
	2, // 7: sns.SNSService.List:output_type -> sns.ListReply
	1, // 8: sns.SNSService.Follow:output_type -> sns.Reply
	1, // 9: sns.SNSService.Unfollow:output_type -> sns.Reply
	3, // 10: sns.SNSService.Timeline:output_type -> sns.Message
	6, // [6:11] is the sub-list for method output_type
	1, // [1:6] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_sns_proto_init() }
func file_sns_proto_init() {
	if File_sns_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sns_proto_rawDesc), len(file_sns_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sns_proto_goTypes,
		DependencyIndexes: file_sns_proto_depIdxs,
		MessageInfos:      file_sns_proto_msgTypes,
	}.Build()
	File_sns_proto = out.File
	file_sns_proto_goTypes = nil
	file_sns_proto_depIdxs = nil
}
