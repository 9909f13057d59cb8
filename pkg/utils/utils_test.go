package utils

import (
	"reflect"
	"testing"
)

func Test_RemoveStringItem(t *testing.T) {
	type args struct {
		items        []string
		itemToDelete string
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "remove middle",
			args: args{items: []string{"a", "b", "c"}, itemToDelete: "b"},
			want: []string{"a", "c"},
		},
		{
			name: "remove missing",
			args: args{items: []string{"a", "b"}, itemToDelete: "x"},
			want: []string{"a", "b"},
		},
		{
			name: "remove from empty",
			args: args{items: []string{}, itemToDelete: "a"},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveStringItem(tt.args.items, tt.args.itemToDelete); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RemoveStringItem() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ConvertBytesToStr(t *testing.T) {
	type args struct {
		size int64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			args: args{size: 512},
			want: "512B",
		},
		{
			args: args{size: 2048},
			want: "2KB",
		},
		{
			args: args{size: 3 << 30},
			want: "3GB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertBytesToStr(tt.args.size); got != tt.want {
				t.Errorf("ConvertBytesToStr() = %v, want %v", got, tt.want)
			}
		})
	}
}
