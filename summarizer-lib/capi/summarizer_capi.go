// ABOUTME: C API wrapper for the Visual Summarizer library to enable FFI usage
// ABOUTME: Exposes extraction, parsing and rendering as JSON or HTML strings

package main

// #include <stdlib.h>
import "C"
import (
	"encoding/json"
	"unsafe"

	summarizer "visual-summarizer-api/summarizer-lib"
)

// Global client instance
var client *summarizer.Client

//export VSInit
func VSInit() C.int {
	var err error
	client, err = summarizer.NewClient()
	if err != nil {
		return -1
	}
	return 0
}

//export VSClose
func VSClose() {
	if client != nil {
		client.Close()
		client = nil
	}
}

//export VSExtract
func VSExtract(html *C.char, pageURL *C.char) *C.char {
	if client == nil {
		return errorJSON("client not initialized")
	}
	content, err := client.Extract(C.GoString(html), C.GoString(pageURL))
	if err != nil {
		return errorJSON(err.Error())
	}
	return toJSON(content)
}

//export VSParse
func VSParse(mode *C.char, reply *C.char) *C.char {
	if client == nil {
		return errorJSON("client not initialized")
	}
	doc, err := client.Parse(summarizer.Mode(C.GoString(mode)), C.GoString(reply))
	if err != nil {
		return errorJSON(err.Error())
	}
	return toJSON(doc)
}

//export VSRenderHTML
func VSRenderHTML(mode *C.char, reply *C.char) *C.char {
	if client == nil {
		return errorJSON("client not initialized")
	}
	doc, err := client.Parse(summarizer.Mode(C.GoString(mode)), C.GoString(reply))
	if err != nil {
		return errorJSON(err.Error())
	}
	html, err := client.RenderHTML(doc)
	if err != nil {
		return errorJSON(err.Error())
	}
	return C.CString(html)
}

//export VSFreeString
func VSFreeString(str *C.char) {
	C.free(unsafe.Pointer(str))
}

func toJSON(v interface{}) *C.char {
	data, err := json.Marshal(v)
	if err != nil {
		return errorJSON(err.Error())
	}
	return C.CString(string(data))
}

func errorJSON(msg string) *C.char {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return C.CString(string(data))
}

func main() {}
