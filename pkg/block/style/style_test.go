package style

import (
	"testing"

	"github.com/pagesmith/pagesmith/pkg/block"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		tablet  string
		desktop string
		want    string
	}{
		{
			name: "AllEmpty",
			want: "",
		},
		{
			name:   "MobileOnly",
			mobile: "p-4 text-center",
			want:   "p-4 text-center",
		},
		{
			name:   "TabletPrefixed",
			tablet: "p-6",
			want:   "md:p-6",
		},
		{
			name:    "DesktopPrefixed",
			desktop: "p-8 text-left",
			want:    "lg:p-8 lg:text-left",
		},
		{
			name:    "AllThreeInOrder",
			mobile:  "p-2",
			tablet:  "p-4",
			desktop: "p-8",
			want:    "p-2 md:p-4 lg:p-8",
		},
		{
			name:   "PreQualifiedTokenPassesThrough",
			tablet: "hover:underline p-6",
			want:   "hover:underline md:p-6",
		},
		{
			name:    "ExtraWhitespaceCollapsed",
			mobile:  "  p-2   text-sm ",
			desktop: " p-8 ",
			want:    "p-2 text-sm lg:p-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.mobile, tt.tablet, tt.desktop); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeClass(t *testing.T) {
	tests := []struct {
		name string
		node *block.Node
		want string
	}{
		{
			name: "NoStyles",
			node: &block.Node{},
			want: "",
		},
		{
			name: "LegacyOnly",
			node: &block.Node{ClassName: "container mx-auto"},
			want: "container mx-auto",
		},
		{
			name: "ResponsiveOnly",
			node: &block.Node{Responsive: &block.ResponsiveClass{Mobile: "p-2", Tablet: "p-4"}},
			want: "p-2 md:p-4",
		},
		{
			name: "LegacyThenResponsive",
			node: &block.Node{
				ClassName:  "container",
				Responsive: &block.ResponsiveClass{Desktop: "p-8"},
			},
			want: "container lg:p-8",
		},
		{
			name: "EmptyTriple",
			node: &block.Node{ClassName: "container", Responsive: &block.ResponsiveClass{}},
			want: "container",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeClass(tt.node); got != tt.want {
				t.Errorf("NodeClass = %q, want %q", got, tt.want)
			}
		})
	}
}
