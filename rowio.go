package qoig

// RowStatus reports what a RowSource produced on a given call, per
// spec.md §6's pull-based input row interface.
type RowStatus int

const (
	// RowProduced means row holds a full row and more rows follow.
	RowProduced RowStatus = iota
	// RowProducedLast means row holds a full row and it is the last one.
	RowProducedLast
	// RowEnd means no row was produced; the source is exhausted.
	RowEnd
)

// RowSource is a pull-based source of image rows for Encoder. Each row
// is width RGBA pixels, four bytes each, in left-to-right order. The
// core never seeks: NextRow is called exactly once per row, in order.
type RowSource interface {
	// NextRow returns the next row's RGBA bytes (len 4*width) and its
	// status. When status is RowEnd, the returned slice is unused.
	NextRow() (row []byte, status RowStatus, err error)
}

// RowSink is a push-based destination for decoded image rows. Each row
// is width pixels at the stream's declared channel count (3 or 4 bytes
// each). PutRow is called exactly once per row, in order.
type RowSink interface {
	PutRow(row []byte) error
}

// SliceRowSource adapts a single contiguous RGBA buffer (height rows of
// 4*width bytes each) to RowSource.
type SliceRowSource struct {
	data   []byte
	width  uint32
	height uint32
	next   uint32
}

// NewSliceRowSource builds a RowSource over an in-memory RGBA buffer.
// data must hold exactly 4*width*height bytes.
func NewSliceRowSource(data []byte, width, height uint32) *SliceRowSource {
	return &SliceRowSource{data: data, width: width, height: height}
}

func (s *SliceRowSource) NextRow() ([]byte, RowStatus, error) {
	if s.next >= s.height {
		return nil, RowEnd, nil
	}
	stride := 4 * s.width
	start := s.next * stride
	row := s.data[start : start+stride]
	s.next++
	if s.next == s.height {
		return row, RowProducedLast, nil
	}
	return row, RowProduced, nil
}

// SliceRowSink collects decoded rows into a single contiguous buffer of
// height rows of channels*width bytes each.
type SliceRowSink struct {
	data     []byte
	width    uint32
	channels uint8
	next     uint32
}

// NewSliceRowSink builds a RowSink that writes into a pre-sized buffer.
// buf must hold exactly channels*width*height bytes.
func NewSliceRowSink(buf []byte, width uint32, channels uint8) *SliceRowSink {
	return &SliceRowSink{data: buf, width: width, channels: channels}
}

func (s *SliceRowSink) PutRow(row []byte) error {
	stride := uint32(s.channels) * s.width
	start := s.next * stride
	copy(s.data[start:start+stride], row)
	s.next++
	return nil
}

// Bytes returns the sink's backing buffer.
func (s *SliceRowSink) Bytes() []byte { return s.data }
