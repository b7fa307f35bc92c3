package main

import (
	"reflect"
	"testing"

	"folio-cli/internal/cli"
)

func TestRewriteDirectOpenArgs(t *testing.T) {
	t.Parallel()

	commands := commandNames(cli.NewRootCmd())

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"folio"},
			want: []string{"folio"},
		},
		{
			name: "project id first token",
			in:   []string{"folio", "hdb-cats"},
			want: []string{"folio", "--open", "hdb-cats"},
		},
		{
			name: "project id after value flag",
			in:   []string{"folio", "--catalog", "./projects.yaml", "hdb-cats"},
			want: []string{"folio", "--catalog", "./projects.yaml", "--open", "hdb-cats"},
		},
		{
			name: "project id after equals flag",
			in:   []string{"folio", "--catalog=./projects.yaml", "hdb-cats"},
			want: []string{"folio", "--catalog=./projects.yaml", "--open", "hdb-cats"},
		},
		{
			name: "project id after bool flag",
			in:   []string{"folio", "--pretty", "hdb-cats"},
			want: []string{"folio", "--pretty", "--open", "hdb-cats"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"folio", "projects", "show", "hdb-cats"},
			want: []string{"folio", "projects", "show", "hdb-cats"},
		},
		{
			name: "help untouched",
			in:   []string{"folio", "help"},
			want: []string{"folio", "help"},
		},
		{
			name: "explicit open untouched",
			in:   []string{"folio", "--open", "hdb-cats"},
			want: []string{"folio", "--open", "hdb-cats"},
		},
		{
			name: "double dash stops rewriting",
			in:   []string{"folio", "--", "hdb-cats"},
			want: []string{"folio", "--", "hdb-cats"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectOpenArgs(tt.in, commands)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}
