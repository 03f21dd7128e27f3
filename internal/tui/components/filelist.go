package components

// FileEntry is one target file as shown in the list.
type FileEntry struct {
	Label   string
	Status  string
	Applied []string
	Skipped []string
	Message string
}

// FileList keeps target files in configuration order.
type FileList struct {
	order   []string
	entries map[string]FileEntry
}

// NewFileList seeds the list with labels, all in the given status.
func NewFileList(labels []string, status string) FileList {
	l := FileList{entries: make(map[string]FileEntry, len(labels))}
	for _, label := range labels {
		l.Upsert(FileEntry{Label: label, Status: status})
	}
	return l
}

// Get returns the entry for label.
func (l FileList) Get(label string) (FileEntry, bool) {
	e, ok := l.entries[label]
	return e, ok
}

// Upsert stores entry, appending unseen labels at the end.
func (l *FileList) Upsert(entry FileEntry) {
	if l.entries == nil {
		l.entries = make(map[string]FileEntry)
	}
	if _, ok := l.entries[entry.Label]; !ok {
		l.order = append(l.order, entry.Label)
	}
	l.entries[entry.Label] = entry
}

// Entries returns the entries in insertion order.
func (l FileList) Entries() []FileEntry {
	out := make([]FileEntry, 0, len(l.order))
	for _, label := range l.order {
		out = append(out, l.entries[label])
	}
	return out
}

// Len is the number of files tracked.
func (l FileList) Len() int {
	return len(l.order)
}
