package parallel

// Band is a run of destination rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int {
	return b.Y1 - b.Y0
}

// Split cuts rows [y, y+height) into bands of bandHeight rows; the last band
// takes the remainder. At most maxBands bands are produced, growing the band
// height when needed. A non-positive bandHeight or maxBands yields one band.
func Split(y, height, bandHeight, maxBands int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 || maxBands <= 0 {
		return []Band{{y, y + height}}
	}
	if n := (height + bandHeight - 1) / bandHeight; n > maxBands {
		bandHeight = (height + maxBands - 1) / maxBands
	}
	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y0 := y; y0 < y+height; y0 += bandHeight {
		bands = append(bands, Band{y0, min(y0+bandHeight, y+height)})
	}
	return bands
}

// RunBands calls fn once per band of rows [y, y+height) and waits for all of
// them. fn must only touch destination rows inside its band.
func (p *WorkerPool) RunBands(y, height, bandHeight int, fn func(Band)) {
	bands := Split(y, height, bandHeight, 4*p.workers)
	if len(bands) == 1 {
		fn(bands[0])
		return
	}
	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() { fn(b) }
	}
	p.ExecuteAll(jobs)
}
