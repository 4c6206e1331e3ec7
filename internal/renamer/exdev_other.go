//go:build !unix

package renamer

func isEXDEV(error) bool { return false }
