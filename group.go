package numfmt

// groupDigits partitions an integer digit string into thousands groups, most
// significant group first. Groups are built iteratively from the right so
// arbitrarily long digit strings never recurse. An empty input yields a
// single empty group.
func groupDigits(digits string, system NumberingSystem) []string {
	if system == Indian {
		return groupIndian(digits)
	}
	return groupWestern(digits)
}

// groupWestern chunks by three. The leftmost group carries the remainder.
func groupWestern(digits string) []string {
	if len(digits) <= 3 {
		return []string{digits}
	}
	groups := make([]string, 0, len(digits)/3+1)
	for len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
	}
	groups = append(groups, digits)
	reverseGroups(groups)
	return groups
}

// groupIndian keeps the rightmost three digits together and chunks the rest
// by two.
func groupIndian(digits string) []string {
	if len(digits) <= 3 {
		return []string{digits}
	}
	groups := make([]string, 0, len(digits)/2+1)
	groups = append(groups, digits[len(digits)-3:])
	digits = digits[:len(digits)-3]
	for len(digits) > 2 {
		groups = append(groups, digits[len(digits)-2:])
		digits = digits[:len(digits)-2]
	}
	groups = append(groups, digits)
	reverseGroups(groups)
	return groups
}

func reverseGroups(groups []string) {
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
}
