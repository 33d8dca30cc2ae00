package export

import (
	"encoding/hex"
	"strings"

	"github.com/wxarchive/wxexport/internal/store"
)

// chatroomMarker distinguishes group-chat identifiers from individual
// accounts.
const chatroomMarker = "@chatroom"

// unresolvedContactType is the sentinel type code of a synthesized
// contact summary.
const unresolvedContactType = -1

// FormattedMessage is one message record in the export artifact. Field
// order matches the serialized order.
type FormattedMessage struct {
	MessageID       int64   `json:"message_id"`
	TalkerID        int64   `json:"talker_id"`
	Type            int64   `json:"type"`
	SubType         int64   `json:"sub_type"`
	IsSender        bool    `json:"is_sender"`
	Timestamp       int64   `json:"timestamp"`
	FormattedTime   string  `json:"formatted_time"`
	Content         string  `json:"content"`
	MsgSvrID        *int64  `json:"msg_svr_id"`
	BytesExtra      *string `json:"bytes_extra"`
	Talker          string  `json:"talker"`
	Reserved1       *int64  `json:"reserved1"`
	CompressContent *string `json:"compress_content"`
}

// ContactSummary is one conversation's contact metadata in the export
// artifact, resolved from the contact store or synthesized.
type ContactSummary struct {
	Username   string `json:"username"`
	Alias      string `json:"alias"`
	Type       int64  `json:"type"`
	Remark     string `json:"remark"`
	Nickname   string `json:"nickname"`
	IsChatroom bool   `json:"is_chatroom"`
}

// IsChatroom reports whether a conversation identifier names a group
// chat.
func IsChatroom(id string) bool {
	return strings.Contains(id, chatroomMarker)
}

// FormatMessage maps a raw row into its export record. Blob fields
// become lowercase hex; an absent blob stays null, never "".
func FormatMessage(m store.RawMessage) FormattedMessage {
	return FormattedMessage{
		MessageID:       m.LocalID,
		TalkerID:        m.TalkerID,
		Type:            m.Type,
		SubType:         m.SubType,
		IsSender:        m.IsSender,
		Timestamp:       m.CreateTime,
		FormattedTime:   m.StrTime,
		Content:         m.Content,
		MsgSvrID:        m.MsgSvrID,
		BytesExtra:      hexString(m.BytesExtra),
		Talker:          m.Talker,
		Reserved1:       m.Reserved1,
		CompressContent: hexString(m.CompressContent),
	}
}

// FormatContact maps a contact lookup result into its export summary.
// A nil info synthesizes the fallback: the identifier stands in for
// username and nickname, type -1 marks the contact unresolved, and the
// chatroom flag is still derived from the identifier alone.
func FormatContact(info *store.ContactInfo, id string) ContactSummary {
	if info == nil {
		return ContactSummary{
			Username:   id,
			Alias:      "",
			Type:       unresolvedContactType,
			Remark:     "",
			Nickname:   id,
			IsChatroom: IsChatroom(id),
		}
	}
	return ContactSummary{
		Username:   info.UserName,
		Alias:      info.Alias,
		Type:       info.Type,
		Remark:     info.Remark,
		Nickname:   info.NickName,
		IsChatroom: IsChatroom(info.UserName),
	}
}

func hexString(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := hex.EncodeToString(b)
	return &s
}
