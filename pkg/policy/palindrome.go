package policy

// IsPalindrome reports whether s reads the same forwards and backwards,
// comparing runes. The empty string and single-rune strings are palindromes.
func IsPalindrome(s string) bool {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}
	return true
}

// FindPalindromeLabel returns the first label key, in sorted order, that is a
// palindrome. Further matches are not reported.
func FindPalindromeLabel(labels map[string]string) (string, bool) {
	for _, key := range (ResourceView{Labels: labels}).SortedLabelKeys() {
		if IsPalindrome(key) {
			return key, true
		}
	}
	return "", false
}
