package mediaclient

import "io"

// progressReader reports whole-percentage progress as the transport drains
// the upload body. Callbacks are strictly increasing, so a caller's UI can
// apply them without reordering.
type progressReader struct {
	r       io.Reader
	total   int64
	sent    int64
	lastPct int
	report  ProgressFunc
}

func newProgressReader(r io.Reader, total int64, report ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, lastPct: -1, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		pct := int(p.sent * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.lastPct {
			p.lastPct = pct
			p.report(pct)
		}
	}
	return n, err
}
