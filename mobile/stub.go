//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口在 mobile.go 和 embed.go 中，需要 -tags mobile 且
// mobile/ 下有 assets/ 和 data/ 副本才能编译。
// 此文件保证 go build ./... 在桌面端也能通过。
package mobile

// Dummy 是一个空导出函数，与 mobile.go 中的同名函数对应
func Dummy() {}
