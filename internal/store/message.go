package store

import (
	"database/sql"

	"github.com/wxarchive/wxexport/internal/timerange"
	"go.uber.org/zap"
)

// MessageDB is read-only access to the MSG database. The optional
// CompressContent column (absent in older schema versions) is detected
// once at open time.
type MessageDB struct {
	db                 *DB
	logger             *zap.Logger
	hasCompressContent bool
}

// OpenMessageDB opens the message database and probes its schema
// capabilities.
func OpenMessageDB(path string, logger *zap.Logger) (*MessageDB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	hasCompress, err := db.hasColumn("MSG", "CompressContent")
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &MessageDB{db: db, logger: logger, hasCompressContent: hasCompress}, nil
}

// Close releases the underlying connection.
func (m *MessageDB) Close() error {
	return m.db.Close()
}

// Messages returns all rows ordered by CreateTime ascending, filtered to
// the window when r is non-nil. The bounds are strict on both sides
// (CreateTime > start AND CreateTime < end): rows whose timestamp equals
// a bound are excluded. Callers needing edge inclusion must widen the
// bound by one second.
//
// Query and scan failures are logged and yield an empty sequence; only a
// missing database file is fatal, at OpenMessageDB.
func (m *MessageDB) Messages(r *timerange.Range) []RawMessage {
	compressCol := `CompressContent`
	if !m.hasCompressContent {
		compressCol = `NULL AS CompressContent`
	}
	query := `
		SELECT localId, TalkerId, Type, SubType, IsSender, CreateTime, Status, StrContent,
			strftime('%Y-%m-%d %H:%M:%S', CreateTime, 'unixepoch', 'localtime') AS StrTime,
			MsgSvrID, BytesExtra, StrTalker, Reserved1, ` + compressCol + `
		FROM MSG`
	var args []any
	if r != nil {
		query += ` WHERE CreateTime > ? AND CreateTime < ?`
		args = append(args, r.Start, r.End)
	}
	query += ` ORDER BY CreateTime`

	rows, err := m.db.Query(query, args...)
	if err != nil {
		m.logger.Warn("message query failed", zap.Error(err))
		return nil
	}
	defer func() { _ = rows.Close() }()

	var msgs []RawMessage
	for rows.Next() {
		var (
			msg                  RawMessage
			isSender             int64
			content, strTime     sql.NullString
			msgSvrID, reserved1  sql.NullInt64
			bytesExtra, compress any
		)
		if err := rows.Scan(&msg.LocalID, &msg.TalkerID, &msg.Type, &msg.SubType,
			&isSender, &msg.CreateTime, &msg.Status, &content, &strTime,
			&msgSvrID, &bytesExtra, &msg.Talker, &reserved1, &compress); err != nil {
			m.logger.Warn("message scan failed", zap.Error(err))
			return nil
		}
		msg.IsSender = isSender != 0
		msg.Content = content.String
		msg.StrTime = strTime.String
		if msgSvrID.Valid {
			v := msgSvrID.Int64
			msg.MsgSvrID = &v
		}
		if reserved1.Valid {
			v := reserved1.Int64
			msg.Reserved1 = &v
		}
		msg.BytesExtra = coerceBytes(bytesExtra)
		msg.CompressContent = coerceBytes(compress)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		m.logger.Warn("message iteration failed", zap.Error(err))
		return nil
	}
	return msgs
}

// coerceBytes best-effort converts a scanned blob value. A value that is
// neither bytes nor text (a data-integrity inconsistency in the source)
// maps to nil rather than an error.
func coerceBytes(v any) []byte {
	switch b := v.(type) {
	case []byte:
		if len(b) == 0 {
			return nil
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out
	case string:
		if b == "" {
			return nil
		}
		return []byte(b)
	default:
		return nil
	}
}
