// Package trainboard renders a training-plan spreadsheet as a dashboard page.
package trainboard

// Default page chrome.
const (
	DefaultTitle   = "💪 道长训练计划"
	DefaultCaption = "数据来源：Google Sheet · 实时同步"
)

// Options configures page assembly.
type Options struct {
	// Title is the page heading. Empty uses DefaultTitle.
	Title string
	// Caption is shown under the title. Empty uses DefaultCaption.
	Caption string
}

// DefaultOptions returns the default page options.
func DefaultOptions() Options {
	return Options{
		Title:   DefaultTitle,
		Caption: DefaultCaption,
	}
}

func (o Options) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

func (o Options) caption() string {
	if o.Caption == "" {
		return DefaultCaption
	}
	return o.Caption
}
