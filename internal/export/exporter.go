// Package export implements the extraction pipeline: query, group,
// contact resolution, formatting, and artifact serialization.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wxarchive/wxexport/internal/store"
	"github.com/wxarchive/wxexport/internal/timerange"
	"go.uber.org/zap"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// Exporter composes the stores into the export pipeline. A nil contact
// store is allowed; every summary is then synthesized.
type Exporter struct {
	messages *store.MessageDB
	contacts *store.ContactDB
	logger   *zap.Logger
	now      func() time.Time
}

// New creates an Exporter.
func New(messages *store.MessageDB, contacts *store.ContactDB, logger *zap.Logger) *Exporter {
	return &Exporter{
		messages: messages,
		contacts: contacts,
		logger:   logger,
		now:      time.Now,
	}
}

// Export runs one export: messages in the window (nil r = full history)
// grouped by conversation, each conversation paired with a resolved or
// synthesized contact summary, written as JSON to outputPath. An empty
// outputPath derives exports/wechat_records_<start>_to_<end>.json under
// the working directory. Returns the written path, or "" with a nil
// error when no messages matched.
func (e *Exporter) Export(r *timerange.Range, outputPath string) (string, error) {
	log := e.logger.With(zap.String("export_id", uuid.NewString()))

	msgs := e.messages.Messages(r)
	if len(msgs) == 0 {
		log.Warn("no messages matched the requested window")
		return "", nil
	}
	groups := GroupByTalker(msgs)

	contacts := make(map[string]ContactSummary, len(groups))
	formatted := make(map[string][]FormattedMessage, len(groups))
	for talker, group := range groups {
		contacts[talker] = FormatContact(e.lookupContact(log, talker), talker)
		records := make([]FormattedMessage, len(group))
		for i, m := range group {
			records[i] = FormatMessage(m)
		}
		formatted[talker] = records
	}

	startDesc, endDesc := r.Describe()
	doc := &Document{
		ExportTime: e.now().Format(exportTimeLayout),
		TimeRange:  RangeDescriptor{Start: startDesc, End: endDesc},
		Contacts:   contacts,
		Messages:   formatted,
	}

	if outputPath == "" {
		derived, err := defaultOutputPath(r)
		if err != nil {
			return "", err
		}
		outputPath = derived
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := writeAtomic(outputPath, doc); err != nil {
		return "", err
	}

	log.Info("export written",
		zap.String("path", outputPath),
		zap.Int("messages", len(msgs)),
		zap.Int("conversations", len(groups)))
	return outputPath, nil
}

// lookupContact resolves a talker, absorbing lookup failures into the
// synthesized-summary fallback.
func (e *Exporter) lookupContact(log *zap.Logger, talker string) *store.ContactInfo {
	if e.contacts == nil {
		return nil
	}
	info, err := e.contacts.Lookup(talker)
	if err != nil {
		log.Warn("contact lookup failed, synthesizing summary",
			zap.String("talker", talker), zap.Error(err))
		return nil
	}
	return info
}

func defaultOutputPath(r *timerange.Range) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	start, end := r.FileTokens()
	name := fmt.Sprintf("wechat_records_%s_to_%s.json", start, end)
	return filepath.Join(cwd, "exports", name), nil
}

// writeAtomic serializes into a temp file in the destination directory
// and renames it into place, so a failed write never leaves a partial
// artifact at the destination path.
func writeAtomic(path string, doc *Document) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wxexport-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := doc.Encode(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("encode document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
