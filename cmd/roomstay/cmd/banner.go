package cmd

import (
	"fmt"
)

const banner = `
  _____                       _____ _
 |  __ \                     / ____| |
 | |__) |___   ___  _ __ ___| (___ | |_ __ _ _   _
 |  _  // _ \ / _ \| '_ ` + "`" + ` _ \ \___ \| __/ _` + "`" + ` | | | |
 | | \ \ (_) | (_) | | | | | |____) | || (_| | |_| |
 |_|  \_\___/ \___/|_| |_| |_|_____/ \__\__,_|\__, |
                                               __/ |
                                              |___/
`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  Local booking viewer - Version %s\x1b[0m\n\n", Version)
}
