package plot

// Arg is one argument to Plot: either a sample to record or an option
// for the call site. Samples are recorded on every call; options are
// consulted only the first time a call site is seen.
type Arg interface {
	apply(*call)
}

// call collects the samples and options of a single Plot invocation.
type call struct {
	samples []sample
	opts    Options
}

type sample struct {
	name string
	x    float64
	hasX bool
	y    float64
}

type sampleArg sample

func (s sampleArg) apply(c *call) {
	c.samples = append(c.samples, sample(s))
}

type optionArg func(*Options)

func (f optionArg) apply(c *call) {
	f(&c.opts)
}

// Value records y for the named series. The x coordinate defaults to
// the call site's iteration counter, so the first call plots at x=0.
func Value[T Number](name string, y T) Arg {
	return sampleArg{name: name, y: float64(y)}
}

// XY records an explicit (x, y) pair for the named series.
func XY[X, Y Number](name string, x X, y Y) Arg {
	return sampleArg{name: name, x: float64(x), hasX: true, y: float64(y)}
}

// ValueAny is Value for values only known as any. Panics if y is not
// numeric.
func ValueAny(name string, y any) Arg {
	return sampleArg{name: name, y: floatValue(y)}
}

// XYAny is XY for values only known as any. Panics if x or y is not
// numeric.
func XYAny(name string, x, y any) Arg {
	return sampleArg{name: name, x: floatValue(x), hasX: true, y: floatValue(y)}
}

// Caption sets the chart title, which also names the output file or
// live window.
func Caption(caption string) Arg {
	return optionArg(func(o *Options) { o.Caption = caption })
}

// Size sets the output size in pixels.
func Size(width, height int) Arg {
	return optionArg(func(o *Options) {
		o.Width = width
		o.Height = height
	})
}

// XLabel sets the x axis description.
func XLabel(label string) Arg {
	return optionArg(func(o *Options) { o.XLabel = label })
}

// YLabel sets the y axis description.
func YLabel(label string) Arg {
	return optionArg(func(o *Options) { o.YLabel = label })
}

// Path sets the output file explicitly, bypassing the default
// directory and caption-derived name.
func Path(path string) Arg {
	return optionArg(func(o *Options) { o.Path = path })
}

// XRange pins the x axis to [min, max] instead of deriving it from
// the samples.
func XRange(min, max float64) Arg {
	return optionArg(func(o *Options) { o.XRange = &Range{Min: min, Max: max} })
}

// YRange pins the y axis to [min, max] instead of deriving it from
// the samples.
func YRange(min, max float64) Arg {
	return optionArg(func(o *Options) { o.YRange = &Range{Min: min, Max: max} })
}

// Window keeps only the n most recent samples per series.
func Window(n int) Arg {
	return optionArg(func(o *Options) { o.Window = n })
}

// Live redraws a window as samples arrive instead of writing a file
// at teardown.
func Live() Arg {
	return optionArg(func(o *Options) { o.Live = true })
}
