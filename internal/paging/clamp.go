package paging

// Clamp bounds index into [0, total-1]. A total below one counts as a
// single page, so the result is always a valid index.
func Clamp(index, total int) int {
	if total < 1 {
		total = 1
	}
	if index > total-1 {
		index = total - 1
	}
	if index < 0 {
		return 0
	}
	return index
}
