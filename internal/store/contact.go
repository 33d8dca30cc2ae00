package store

import (
	"database/sql"
	"fmt"
)

const contactWithLabelQuery = `
	SELECT UserName, Alias, Type, Remark, NickName, PYInitial, RemarkPYInitial,
		ContactHeadImgUrl.smallHeadImgUrl, ContactHeadImgUrl.bigHeadImgUrl, ExTraBuf,
		COALESCE(ContactLabel.LabelName, 'None') AS labelName
	FROM Contact
	INNER JOIN ContactHeadImgUrl ON Contact.UserName = ContactHeadImgUrl.usrName
	LEFT JOIN ContactLabel ON Contact.LabelIDList = ContactLabel.LabelId
	WHERE UserName = ?`

// Older MicroMsg schemas have no ContactLabel table.
const contactPlainQuery = `
	SELECT UserName, Alias, Type, Remark, NickName, PYInitial, RemarkPYInitial,
		ContactHeadImgUrl.smallHeadImgUrl, ContactHeadImgUrl.bigHeadImgUrl, ExTraBuf,
		'None' AS labelName
	FROM Contact
	INNER JOIN ContactHeadImgUrl ON Contact.UserName = ContactHeadImgUrl.usrName
	WHERE UserName = ?`

// ContactDB is read-only access to the MicroMsg database. Whether the
// schema carries the ContactLabel table is probed once at open time; the
// label join is skipped on older schemas instead of failing per lookup.
type ContactDB struct {
	db            *DB
	hasLabelTable bool
}

// OpenContactDB opens the contact database and probes its schema
// capabilities.
func OpenContactDB(path string) (*ContactDB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	hasLabel, err := db.hasTable("ContactLabel")
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &ContactDB{db: db, hasLabelTable: hasLabel}, nil
}

// Close releases the underlying connection.
func (c *ContactDB) Close() error {
	return c.db.Close()
}

// Lookup returns the contact row for a conversation identifier, or
// (nil, nil) when no row matches.
func (c *ContactDB) Lookup(username string) (*ContactInfo, error) {
	query := contactWithLabelQuery
	if !c.hasLabelTable {
		query = contactPlainQuery
	}

	var (
		info                ContactInfo
		alias, remark, nick sql.NullString
		pyInitial, remarkPY sql.NullString
		smallHead, bigHead  sql.NullString
		extraBuf            any
	)
	err := c.db.QueryRow(query, username).Scan(
		&info.UserName, &alias, &info.Type, &remark, &nick,
		&pyInitial, &remarkPY, &smallHead, &bigHead, &extraBuf, &info.LabelName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup contact %q: %w", username, err)
	}
	info.Alias = alias.String
	info.Remark = remark.String
	info.NickName = nick.String
	info.PYInitial = pyInitial.String
	info.RemarkPYInitial = remarkPY.String
	info.SmallHeadImgURL = smallHead.String
	info.BigHeadImgURL = bigHead.String
	info.ExtraBuf = coerceBytes(extraBuf)
	return &info, nil
}
