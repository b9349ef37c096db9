package isdomain_test

import (
	"fmt"
	"strings"

	"github.com/tbckr/isdomain"
)

func ExampleIsDomain() {
	for _, s := range []string{
		"http://localhost",
		"http://localhost:9000",
		"http://localhost.com",
		"https://www.localhost.com:9000",
		"example.com",
		"sub.domain.co.uk",
		"google-cloud.ai",
		"a.b",
		"localhost",
		"hyphen-.com",
		"-hyphen.com",
		"inva.lid!",
		strings.Repeat("a", 64) + ".com",
	} {
		fmt.Println(isdomain.IsDomain(s))
	}
	// Output:
	// false
	// false
	// true
	// true
	// true
	// true
	// true
	// true
	// true
	// false
	// false
	// false
	// false
}

func ExampleExtractHostname() {
	fmt.Println(isdomain.ExtractHostname("HTTPS://WWW.Example.com:8443/index.html?x=1"))
	// Output: www.example.com
}

func ExampleIsDomainValue() {
	fmt.Println(isdomain.IsDomainValue(123))
	fmt.Println(isdomain.IsDomainValue("example.com"))
	// Output:
	// false
	// true
}

func ExampleDiagnose() {
	fmt.Println(isdomain.Diagnose("example.com"))
	fmt.Println(isdomain.Diagnose("inva.lid!"))
	// Output:
	// <nil>
	// invalid input: malformed hostname: "inva.lid!"
}
