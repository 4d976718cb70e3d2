package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// InputVariant is the surface treatment of a text input.
type InputVariant string

const (
	InputDefault  InputVariant = "default"
	InputFilled   InputVariant = "filled"
	InputOutlined InputVariant = "outlined"
)

// InputState is the validation state of a text input.
type InputState string

const (
	InputStateDefault InputState = "default"
	InputStateError   InputState = "error"
	InputStateSuccess InputState = "success"
)

var InputSpec = variant.NewBuilder().
	Base("w-full font-base leading-normal bg-background border border-border rounded-md text-foreground transition-all appearance-none outline-none focus:border-border-focus focus:shadow-focus").
	Axis("variant",
		variant.V(string(InputDefault), ""),
		variant.V(string(InputFilled), "bg-background-secondary border-0 focus:bg-background focus:shadow-inner"),
		variant.V(string(InputOutlined), "border-2"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "h-8 text-sm px-sm py-xs"),
		variant.V(string(SizeMedium), "h-10 text-base px-md py-sm"),
		variant.V(string(SizeLarge), "h-12 text-lg px-lg py-md"),
	).
	Axis("state",
		variant.V(string(InputStateDefault), ""),
		variant.V(string(InputStateError), "border-danger focus:shadow-focus-danger"),
		variant.V(string(InputStateSuccess), "border-success focus:shadow-focus-success"),
	).
	Default("variant", string(InputDefault)).
	Default("size", string(SizeMedium)).
	Default("state", string(InputStateDefault)).
	MustBuild()

// InputProps selects an input's appearance. Error takes precedence over
// Success when both are set; an explicit State overrides both.
type InputProps struct {
	Variant  InputVariant
	Size     Size
	State    InputState
	Error    bool
	Success  bool
	Disabled bool
	Class    []string
}

func (p InputProps) state() InputState {
	switch {
	case p.State != "":
		return p.State
	case p.Error:
		return InputStateError
	case p.Success:
		return InputStateSuccess
	}
	return ""
}

func (p InputProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "size", string(p.Size), "state", string(p.state()))
}

func (p InputProps) Classes() (variant.ClassList, error) {
	var extra []string
	if p.Disabled {
		extra = append(extra, "opacity-50", "cursor-not-allowed")
	}
	extra = append(extra, p.Class...)
	return variant.Resolve(InputSpec, p.Selection(), extra...)
}
