package game

import "github.com/atotto/clipboard"

// reportLogTail is how many sim-log lines the clipboard report carries.
const reportLogTail = 60

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
