// Package pricing derives the cost of applying to a job posting from its
// stored fields. The function is pure: posting and application recompute it
// independently and must agree exactly.
package pricing

import "strconv"

// RequiredAmount is the sum of the character lengths of the role name and job
// location plus the decimal digit counts of the CTC bounds.
func RequiredAmount(roleName, jobLocation string, minCTC, maxCTC int) int {
	return len(roleName) + len(jobLocation) + digits(minCTC) + digits(maxCTC)
}

// digits counts the decimal string length, sign included for negatives,
// matching string-length semantics rather than pure digit math.
func digits(n int) int {
	return len(strconv.Itoa(n))
}
