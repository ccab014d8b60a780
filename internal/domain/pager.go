package domain

// Pager is an offset/limit cursor over an ordered collection. Adapters mutate
// it in place to advance across pages of an interactive listing. The limit is
// always at least 1; the offset is passed through to the backing store
// unchecked, negative values included.
type Pager struct {
	offset int64
	limit  int64
}

// NewPager creates a Pager, clamping a non-positive limit up to 1.
func NewPager(offset, limit int64) Pager {
	if limit < 1 {
		limit = 1
	}

	return Pager{offset: offset, limit: limit}
}

// Offset returns the current offset.
func (p *Pager) Offset() int64 { return p.offset }

// Limit returns the current limit.
func (p *Pager) Limit() int64 { return p.limit }

// AddOffset advances the offset by v.
func (p *Pager) AddOffset(v int64) { p.offset += v }

// AddLimit grows the limit by v.
func (p *Pager) AddLimit(v int64) { p.limit += v }

// SetOffset replaces the offset.
func (p *Pager) SetOffset(v int64) { p.offset = v }

// SetLimit replaces the limit.
func (p *Pager) SetLimit(v int64) { p.limit = v }
