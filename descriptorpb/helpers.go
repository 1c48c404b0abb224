package descriptorpb

// String returns a pointer to v, for building descriptors.
func String(v string) *string { return &v }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// IsRepeated reports whether the field is declared repeated.
func (x *FieldDescriptorProto) IsRepeated() bool {
	return x.GetLabel() == FieldDescriptorProto_LABEL_REPEATED
}

// Message returns the top-level message called name, or nil.
func (x *FileDescriptorProto) Message(name string) *DescriptorProto {
	for _, m := range x.GetMessageType() {
		if m.GetName() == name {
			return m
		}
	}
	return nil
}
