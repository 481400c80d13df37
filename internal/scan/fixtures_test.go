package scan

// Byte fixtures captured from real franchise files.
var (
	startWithConfirm = []byte{
		0x00, 0x01, 0x00, 0x00, 0x09, 0x70, 0x3d, 0x6c, 0xf0, 0x0a, 0xef, 0xbb,
		0xbf, 0x3c, 0x46, 0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61,
		0x20, 0x66, 0x69, 0x6c, 0x65, 0x4e, 0x61, 0x6d, 0x65, 0x3d, 0x22, 0x15,
		0x00, 0xf3, 0x07, 0x63, 0x68, 0x69, 0x73, 0x65, 0x2d, 0x53, 0x63, 0x68,
		0x65, 0x6d, 0x61, 0x73, 0x22, 0x20, 0x64, 0x61, 0x74, 0x61, 0x62, 0x61,
		0x73, 0x21, 0x00, 0xf2, 0x09, 0x4d, 0x61, 0x64,
	}
	bodyWithEnd = []byte{
		0x00, 0x05, 0x2b, 0x09, 0x0c, 0x1b, 0x00, 0x0f, 0xdf, 0x3e, 0x14, 0x08,
		0x2a, 0x09, 0x05, 0xcb, 0x14, 0x0c, 0x6e, 0x04, 0x0f, 0x49, 0x3d, 0x0c,
		0x04, 0x7e, 0x04, 0xf0, 0x02, 0x73, 0x3e, 0x0d, 0x0a, 0x3c, 0x2f, 0x46,
		0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x3e,
	}
	startSplitHead = []byte{
		0x00, 0x11, 0x00, 0x08, 0x0c, 0x87, 0x12, 0x00, 0x00, 0x43, 0x40, 0x40,
		0xd0, 0x03, 0x5b, 0x1d, 0x20, 0xc3, 0xa2, 0x38, 0x00, 0x2c, 0xf3, 0xf2,
		0x15, 0x01, 0x04, 0xe0, 0x00, 0x0f, 0x30, 0x09, 0x05, 0x80, 0xc4, 0x51,
		0x00, 0x00, 0x3e, 0x16, 0x1f, 0x2b, 0x00, 0x01, 0x00, 0x00,
	}
	startSplitRest = []byte{
		0x09, 0x70, 0x3d, 0x6e, 0xf0, 0x07, 0x3c, 0x46, 0x72, 0x61, 0x6e, 0x54,
		0x6b, 0x44, 0x61, 0x74, 0x61, 0x20, 0x66, 0x69, 0x6c, 0x65, 0x4e, 0x61,
		0x6d, 0x65, 0x3d, 0x22, 0x15, 0x00, 0xf3, 0x07, 0x63, 0x68, 0x69, 0x73,
		0x65, 0x2d, 0x53, 0x63, 0x68, 0x65, 0x6d, 0x61, 0x73,
	}
	endSplitHead = []byte{
		0x08, 0x2a, 0x09, 0x05, 0xcb, 0x14, 0x0c, 0x6e, 0x04, 0x0f, 0x49, 0x3d,
		0x0c, 0x04, 0x7e, 0x04, 0xf0, 0x02, 0x73, 0x3e, 0x0d, 0x0a, 0x3c, 0x2f,
		0x46,
	}
	endSplitRest = []byte{
		0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x3e, 0x00, 0x00,
		0x00, 0xb3, 0x09, 0x70, 0x00, 0x93, 0xf0, 0x23, 0xef, 0xbb, 0xbf, 0x3c,
		0x3f, 0x78, 0x6d, 0x6c, 0x20, 0x76,
	}
	confirmSplitLateHead = []byte{
		0x00, 0x01, 0x00, 0x00, 0x09, 0x70, 0x3d, 0x6e, 0xf0, 0x07, 0x3c, 0x46,
		0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x20, 0x66, 0x69,
		0x6c, 0x65, 0x4e, 0x61, 0x6d, 0x65, 0x3d, 0x22, 0x15, 0x00, 0xf3, 0x07,
		0x63, 0x68, 0x69, 0x73,
	}
	confirmSplitLateRest = []byte{
		0x65, 0x2d, 0x53, 0x63, 0x68, 0x65, 0x6d, 0x61, 0x73, 0x22, 0x20, 0x64,
		0x61, 0x74, 0x61, 0x62, 0x61, 0x73, 0x21, 0x00, 0xf2, 0x09, 0x4d, 0x61,
		0x64, 0x64, 0x65, 0x6e, 0x32, 0x30, 0x5f, 0x47, 0x65, 0x6e, 0x34, 0x5f,
		0x43, 0x46, 0x4d, 0x2e, 0x4d, 0x32, 0x30, 0x5f, 0x4d, 0x4c, 0x28, 0x00,
		0xf3, 0x02, 0x4d, 0x61, 0x6a, 0x6f, 0x72, 0x56, 0x65, 0x72, 0x73, 0x69,
		0x6f, 0x6e, 0x3d, 0x22, 0x33, 0x34,
	}
	confirmSplitHead = []byte{
		0x00, 0x01, 0x00, 0x00, 0x09, 0x70, 0x3d, 0x6e, 0xf0, 0x07, 0x3c, 0x46,
		0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x20, 0x66, 0x69,
		0x6c, 0x65, 0x4e, 0x61, 0x6d, 0x65, 0x3d, 0x22, 0x15, 0x00, 0xf3, 0x07,
		0x63, 0x68, 0x69, 0x73, 0x65, 0x2d,
	}
	confirmSplitRest = []byte{
		0x53, 0x63, 0x68, 0x65, 0x6d, 0x61, 0x73, 0x22, 0x20, 0x64, 0x61, 0x74,
		0x61, 0x62, 0x61, 0x73, 0x21, 0x00, 0xf2, 0x09, 0x4d, 0x61, 0x64, 0x64,
		0x65, 0x6e, 0x32, 0x30, 0x5f, 0x47, 0x65, 0x6e,
	}
	attributeTable = []byte{
		0x00, 0x01, 0x00, 0x00, 0x09, 0x70, 0x42, 0x87, 0xf7, 0x11, 0x43, 0x6f,
		0x6c, 0x6f, 0x72, 0x22, 0x20, 0x69, 0x64, 0x78, 0x3d, 0x22, 0x32, 0x30,
		0x22, 0x20, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3d, 0x22, 0x31, 0x38, 0x22,
		0x11, 0x43, 0x6f, 0x6c, 0x6f, 0x72, 0x22, 0x20, 0x69, 0x64, 0x78, 0x3d,
		0x22, 0x32, 0x30, 0x22, 0x20, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3d, 0x22,
		0x31, 0x38, 0x22, 0x11, 0x43, 0x6f, 0x6c, 0x6f, 0x72, 0x22, 0x20, 0x69,
		0x64, 0x78, 0x3d, 0x22, 0x32, 0x30, 0x22, 0x20, 0x76, 0x61, 0x6c, 0x75,
		0x65, 0x3d, 0x22, 0x31, 0x38, 0x22,
	}
	overlappingStartHead = []byte{
		0x00, 0x11, 0x00, 0x08, 0x0c, 0x87, 0x12, 0x00, 0x00, 0x43, 0x40, 0x40,
		0xd0, 0x03, 0x5b, 0x1d, 0x20, 0xc3, 0xa2, 0x38, 0x00, 0x2c, 0xf3, 0xf2,
		0x15, 0x01, 0x04, 0xe0, 0x00, 0x0f, 0x30, 0x09, 0x05, 0x80, 0xc4, 0x51,
		0x00, 0x00, 0x3e, 0x00, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00,
	}
	startOnlyHead = []byte{
		0x03, 0x5b, 0x1d, 0x20, 0xc3, 0xa2, 0x38, 0x00, 0x2c, 0xf3, 0xf2, 0x15,
		0x01, 0x04, 0xe0, 0x00, 0x0f, 0x30, 0x09, 0x05, 0x80, 0xc4, 0x51, 0x00,
		0x00, 0x3e, 0x16, 0x1f, 0x2b, 0x00, 0x01, 0x00, 0x00, 0x09, 0x70, 0x3d,
		0x6e, 0xf0, 0x07,
	}
	confirmOnlyRest = []byte{
		0x3c, 0x46, 0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x20,
		0x66, 0x69, 0x6c, 0x65, 0x4e, 0x61, 0x6d, 0x65, 0x3d, 0x22, 0x15, 0x00,
		0xf3, 0x07, 0x63, 0x68, 0x69, 0x73, 0x65, 0x2d, 0x53, 0x63, 0x68, 0x65,
		0x6d, 0x61, 0x73, 0x22, 0x20, 0x64, 0x61, 0x74, 0x61, 0x62, 0x61, 0x73,
		0x21, 0x00, 0xf2, 0x09, 0x4d, 0x61, 0x64, 0x64, 0x65, 0x6e, 0x32, 0x30,
		0x5f, 0x47, 0x65,
	}
	// endThenConfirmedStart closes an unconfirmed candidate and opens a confirmed one.
	endThenConfirmedStart = []byte{
		0x2a, 0x09, 0x05, 0xcb, 0x14, 0x0c, 0x6e, 0x04, 0x0f, 0x49, 0x3d, 0x0c,
		0x04, 0x7e, 0x04, 0xf0, 0x02, 0x73, 0x3e, 0x0d, 0x0a, 0x3c, 0x2f, 0x46,
		0x72, 0x61, 0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x3e, 0x00, 0x01,
		0x00, 0x00, 0x09, 0x70, 0x3d, 0x62, 0xf0, 0x07, 0x3c, 0x46, 0x72, 0x61,
		0x6e, 0x54, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x20, 0x66, 0x69, 0x6c, 0x65,
		0x4e, 0x61, 0x6d, 0x65, 0x3d, 0x22, 0x15, 0x00, 0xf3, 0x07, 0x63, 0x68,
		0x69, 0x73, 0x65, 0x2d, 0x53, 0x63, 0x68, 0x65, 0x6d, 0x61, 0x73, 0x22,
		0x20, 0x64, 0x61, 0x74, 0x61, 0x62, 0x61, 0x73, 0x21, 0x00, 0xf2, 0x09,
		0x4d, 0x61, 0x64, 0x64, 0x65, 0x6e, 0x32, 0x30, 0x5f, 0x47, 0x65, 0x6e,
		0x34, 0x5f, 0x43, 0x46, 0x4d, 0x2e, 0x4d, 0x32, 0x30, 0x5f, 0x52, 0x4c,
		0x28, 0x00, 0xf3, 0x02, 0x4d, 0x61, 0x6a, 0x6f, 0x72, 0x56, 0x65, 0x72,
		0x73, 0x69, 0x6f, 0x6e, 0x3d, 0x22, 0x33, 0x36, 0x38, 0x17, 0x00, 0x27,
		0x69, 0x6e, 0x17, 0x00, 0x12, 0x30, 0x15, 0x00, 0x40, 0x52, 0x65, 0x76,
		0x69, 0x28, 0x00, 0x05, 0x2f, 0x00, 0x52, 0x36, 0x22, 0x20, 0x69,
	}
	startRestAttribute = []byte{
		0x09, 0x70, 0x00, 0x07, 0x57, 0x00, 0x00, 0x02, 0x00, 0xa3, 0x3c, 0x61,
		0x74, 0x74, 0x72, 0x69, 0x62, 0x75, 0x74, 0x65,
	}
)
