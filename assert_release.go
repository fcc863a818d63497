//go:build !debug

package vista

const debugEnabled = false
