// Command nativemenu-demo shows an options menu built from every row kind
// and persists the chosen values between runs.
package main

func main() {
	Execute()
}
