/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package markdown renders Blog content to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Options selects the markdown extensions to enable. The zero value renders
// plain CommonMark.
type Options struct {
	Tables        bool
	Strikethrough bool
	TaskLists     bool
	Autolinks     bool
	Footnotes     bool
	Typographer   bool
}

func (o Options) extensions() []goldmark.Extender {
	var exts []goldmark.Extender
	if o.Tables {
		exts = append(exts, extension.Table)
	}
	if o.Strikethrough {
		exts = append(exts, extension.Strikethrough)
	}
	if o.TaskLists {
		exts = append(exts, extension.TaskList)
	}
	if o.Autolinks {
		exts = append(exts, extension.Linkify)
	}
	if o.Footnotes {
		exts = append(exts, extension.Footnote)
	}
	if o.Typographer {
		exts = append(exts, extension.Typographer)
	}
	return exts
}

// Render converts markdown input to HTML.
func Render(input string, opts Options) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(opts.extensions()...))

	var buf bytes.Buffer
	buf.Grow(len(input) * 3 / 2)
	if err := md.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
