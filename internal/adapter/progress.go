package adapter

import "io"

// progressReader wraps the upload body and reports the percentage of bytes
// consumed so far. Reported values never decrease and are capped at 99; the
// caller emits the final 100 only once the server has accepted the upload.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report func(percent int)
}

func newProgressReader(r io.Reader, total int64, report func(percent int)) *progressReader {
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 99 {
			pct = 99
		}
		if pct > p.last {
			p.last = pct
			if p.report != nil {
				p.report(pct)
			}
		}
	}
	return n, err
}

// Percent returns the last reported value.
func (p *progressReader) Percent() int {
	return p.last
}
