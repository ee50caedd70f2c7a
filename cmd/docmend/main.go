// Command docmend repairs and validates the structural integrity of unpacked
// DOCX packages.
package main

func main() {
	Execute()
}
