package sections

import (
	"reflect"
	"testing"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []entity.Section
	}{
		{
			name: "references span excluded",
			text: "## A\nfoo\n## REFERENCES\nbar\n## B\nbaz",
			want: []entity.Section{
				{Title: "A", Body: "foo "},
				{Title: "B", Body: "baz "},
			},
		},
		{
			name: "lines before first heading dropped",
			text: "preamble\n## Topic\nbody line",
			want: []entity.Section{
				{Title: "Topic", Body: "body line "},
			},
		},
		{
			name: "emphasis stripped from titles",
			text: "## **Key Concepts**\ntext",
			want: []entity.Section{
				{Title: "Key Concepts", Body: "text "},
			},
		},
		{
			name: "subheadings are body lines",
			text: "## MAIN DISCUSSION\n### Applications\ndetails here",
			want: []entity.Section{
				{Title: "MAIN DISCUSSION", Body: "### Applications details here "},
			},
		},
		{
			name: "blank lines skipped",
			text: "## A\n\nfirst\n\n\nsecond\n",
			want: []entity.Section{
				{Title: "A", Body: "first second "},
			},
		},
		{
			name: "reference singular also excluded",
			text: "## Reference List\nentry one\n## Next\nok",
			want: []entity.Section{
				{Title: "Next", Body: "ok "},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtractMultilineBodies(t *testing.T) {
	text := "## INTRODUCTION\nSentence one.\nSentence two.\n## CONCLUSION\nDone."
	got := Extract(text)

	if len(got) != 2 {
		t.Fatalf("Extract() returned %d sections, want 2", len(got))
	}
	if got[0].Body != "Sentence one. Sentence two. " {
		t.Errorf("body = %q, want space-joined lines with trailing space", got[0].Body)
	}
}
