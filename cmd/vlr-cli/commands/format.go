package commands

import (
	"fmt"
	"strconv"
	"time"
)

func formatPage(page, total int) string {
	return fmt.Sprintf("%d/%d", page, total)
}

func formatIntPtr(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.Format("2006-01-02 15:04 MST")
}
