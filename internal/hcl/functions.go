package hcl

import (
	"net/url"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// StoryLink returns the address of a story. With an empty base the link
// points at the catalog served by this program; otherwise it follows the
// Storybook "?path=/story/<id>" convention.
func StoryLink(base, story string) string {
	if base == "" {
		return "/stories/" + url.PathEscape(story)
	}
	return strings.TrimRight(base, "/") + "/?path=/story/" + url.QueryEscape(story)
}

func storybookLinkFunc(base string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "story", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(StoryLink(base, args[0].AsString())), nil
		},
	})
}

// evalContext exposes the variables and functions slide documents may use.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"storybook_url": cty.StringVal(l.storybookURL),
		},
		Functions: map[string]function.Function{
			"storybook_link": storybookLinkFunc(l.storybookURL),
			"upper":          stdlib.UpperFunc,
			"lower":          stdlib.LowerFunc,
			"join":           stdlib.JoinFunc,
		},
	}
}
