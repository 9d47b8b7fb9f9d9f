package sha256sum_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/sha256sum"
)

func ExampleDigest() {
	fmt.Println(sha256sum.Digest([]byte("abc")))
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleSum256() {
	sum := sha256sum.Sum256(nil)
	fmt.Printf("%x\n", sum)
	//output:
	// e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
}

func ExampleNew() {
	h := sha256sum.New()

	h.Write([]byte("some data"))

	fmt.Printf("%x\n", h.Sum(nil))
	//output:
	// 1307990e6ba5ca145eb35e99182a9bec46531bc54ddf656a602c780fa0240dee
}

func ExampleHasher_ReadFrom() {
	h := sha256sum.New()

	if _, err := h.ReadFrom(strings.NewReader("abc")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	fmt.Printf("%s  -\n", h.Digest())
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  -
}

func ExamplePad() {
	padded := sha256sum.Pad([]byte("abc"))

	fmt.Println(len(padded))
	fmt.Printf("%x\n", padded[:4])
	fmt.Printf("%x\n", padded[56:])
	//output:
	// 64
	// 61626380
	// 0000000000000018
}
