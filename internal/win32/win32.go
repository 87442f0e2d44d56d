//go:build windows

// Package win32 wraps the handful of user32 calls behind global hotkey
// support: registration, the blocking message retrieval that delivers
// WM_HOTKEY, cross-thread wake posting and async key-state sampling.
package win32

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
	procGetAsyncKeyState   = user32.NewProc("GetAsyncKeyState")
)

const (
	// WMNull is posted as the synthetic wake signal.
	WMNull = 0x0000
	// WMHotkey is delivered by the system when a registered hotkey fires.
	WMHotkey = 0x0312

	pmNoRemove = 0x0000
)

// ErrQuit indicates the thread received WM_QUIT and its message queue is
// shutting down.
var ErrQuit = errors.New("message queue received WM_QUIT")

// MSG mirrors the Win32 MSG structure.
type MSG struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// CurrentThreadID returns the calling thread's id, the target for
// PostThreadMessage wakes.
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// EnsureMessageQueue forces creation of the calling thread's message queue.
// A thread has no queue until its first message call, and wake messages
// posted before then would be lost.
func EnsureMessageQueue() {
	var msg MSG
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, WMNull, WMNull, pmNoRemove)
}

// RegisterHotKey registers mods+vk under id against the calling thread
// (null window handle), so WM_HOTKEY lands on the thread queue.
func RegisterHotKey(id int32, mods, vk uint32) error {
	r, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(mods), uintptr(vk))
	if r == 0 {
		return err
	}
	return nil
}

// UnregisterHotKey removes a registration made by the calling thread.
func UnregisterHotKey(id int32) error {
	r, _, err := procUnregisterHotKey.Call(0, uintptr(id))
	if r == 0 {
		return err
	}
	return nil
}

// GetMessage blocks until the next message in the WM_NULL..WM_HOTKEY range
// arrives on the calling thread's queue.
func GetMessage(msg *MSG) error {
	r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, WMNull, WMHotkey)
	switch int32(r) {
	case -1:
		return err
	case 0:
		return ErrQuit
	}
	return nil
}

// PostThreadMessage posts a message to the queue of another thread.
func PostThreadMessage(threadID, message uint32) error {
	r, _, err := procPostThreadMessageW.Call(uintptr(threadID), uintptr(message), 0, 0)
	if r == 0 {
		return err
	}
	return nil
}

// KeyDown samples whether the key is physically held right now. The most
// significant bit of GetAsyncKeyState carries the pressed state.
func KeyDown(vk uint16) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(r)&0x8000 != 0
}
