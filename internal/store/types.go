package store

// RawMessage is one row of the MSG table, populated once at the scan
// boundary. Nullable columns are pointers; blob columns are nil when the
// stored value is absent or not coercible to bytes.
type RawMessage struct {
	LocalID         int64
	TalkerID        int64
	Type            int64
	SubType         int64
	IsSender        bool
	CreateTime      int64
	Status          int64
	Content         string
	StrTime         string
	MsgSvrID        *int64
	BytesExtra      []byte
	Talker          string
	Reserved1       *int64
	CompressContent []byte
}

// ContactInfo is one resolved row of the Contact table joined with its
// header-image row and, when the schema has one, its label row.
type ContactInfo struct {
	UserName        string
	Alias           string
	Type            int64
	Remark          string
	NickName        string
	PYInitial       string
	RemarkPYInitial string
	SmallHeadImgURL string
	BigHeadImgURL   string
	ExtraBuf        []byte
	LabelName       string
}
