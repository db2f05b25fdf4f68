package store

// lineRange is the [start, end) byte range of one line in the JSONL file.
type lineRange struct {
	start int64
	end   int64
}

// fileIndex maintains running counts and byte-offset bookmarks for fire
// records. It is updated by onAppend as each Record is written and provides
// O(1) lookup for FireLog reads via file.ReadAt.
type fileIndex struct {
	keyDowns   int
	keyUps     int
	fires      []FireSummary
	ranges     []lineRange // parallel to fires
	firesBySet map[string]int
}

func newFileIndex() *fileIndex {
	return &fileIndex{firesBySet: make(map[string]int)}
}

// onAppend updates the index when a record line has been appended.
// lineOffset is the byte offset of the first byte of the written line;
// lineLen is the total bytes written, including the trailing newline.
func (idx *fileIndex) onAppend(rec Record, lineOffset, lineLen int64) {
	switch rec.Kind {
	case KindKeyDown:
		idx.keyDowns++
	case KindKeyUp:
		idx.keyUps++
	case KindFire:
		idx.fires = append(idx.fires, FireSummary{
			Number: len(idx.fires) + 1,
			Set:    rec.Set,
			Chord:  rec.Chord,
			At:     rec.Time,
		})
		idx.ranges = append(idx.ranges, lineRange{start: lineOffset, end: lineOffset + lineLen})
		idx.firesBySet[rec.Set]++
	}
}

func (idx *fileIndex) lastFire() FireSummary {
	if len(idx.fires) == 0 {
		return FireSummary{}
	}
	return idx.fires[len(idx.fires)-1]
}
