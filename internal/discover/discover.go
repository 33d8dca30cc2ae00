// Package discover locates decrypted source databases in their
// conventional on-disk locations. It is CLI convenience only; the export
// core always receives explicit paths.
package discover

import (
	"os"
	"path/filepath"
)

const (
	messageDBName = "MSG.db"
	contactDBName = "MicroMsg.db"
)

// Candidates returns the directories worth scanning, in precedence
// order: the decryption tool's output directory, per-account Msg
// directories under the user's WeChat Files, then generic local
// fallbacks.
func Candidates() []string {
	dirs := []string{
		filepath.Join("app", "Database", "Msg"),
	}

	home, err := os.UserHomeDir()
	if err == nil {
		wechatFiles := filepath.Join(home, "Documents", "WeChat Files")
		if entries, err := os.ReadDir(wechatFiles); err == nil {
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				account := filepath.Join(wechatFiles, e.Name())
				dirs = append(dirs, filepath.Join(account, "Msg"), filepath.Join(account, "FileStorage"))
			}
		}
		dirs = append(dirs, filepath.Join(home, "WeChat Files"))
	}

	cwd, err := os.Getwd()
	if err == nil {
		dirs = append(dirs, filepath.Join(cwd, "Msg"))
	}
	return append(dirs, "Msg", "data", filepath.Join("data", "Msg"))
}

// Databases scans the candidate directories (and one subdirectory level)
// for message and contact databases. Unreadable directories are skipped.
func Databases(dirs []string) (messageDBs, contactDBs []string) {
	seen := make(map[string]bool)
	add := func(list []string, path string) []string {
		abs, err := filepath.Abs(path)
		if err != nil || seen[abs] {
			return list
		}
		seen[abs] = true
		return append(list, abs)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if p := filepath.Join(dir, messageDBName); fileExists(p) {
			messageDBs = add(messageDBs, p)
		}
		if p := filepath.Join(dir, contactDBName); fileExists(p) {
			contactDBs = add(contactDBs, p)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			sub := filepath.Join(dir, e.Name())
			if p := filepath.Join(sub, messageDBName); fileExists(p) {
				messageDBs = add(messageDBs, p)
			}
			if p := filepath.Join(sub, contactDBName); fileExists(p) {
				contactDBs = add(contactDBs, p)
			}
		}
	}
	return messageDBs, contactDBs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
