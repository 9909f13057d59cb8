package utils

import (
	"fmt"
)

var unitArray = []string{"B", "KB", "MB", "GB", "TB"}

// RemoveStringItem removes a string from a slice
func RemoveStringItem(items []string, itemToDelete string) []string {
	for i, item := range items {
		if itemToDelete == item {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// ConvertBytesToStr convert size into string
func ConvertBytesToStr(size int64) string {
	unitIndex := 0
	for size > 1024 {
		size /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%d%s", size, unitArray[unitIndex])
}
