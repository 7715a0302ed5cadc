// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routecore_test

import (
	"fmt"

	"rivaas.dev/routecore"
	"rivaas.dev/routecore/version"
)

func Example() {
	r := routecore.New()
	r.Insert(routecore.Endpoint{
		Handler: func(id string) string { return "user " + id },
		Method:  "GET",
		Path:    "/users/{id}",
		Version: version.All(),
	})

	result, lookupErr := r.Lookup("GET", "/users/42", nil)
	if lookupErr != nil {
		fmt.Println(lookupErr)
		return
	}

	handler := result.Handler.(func(string) string)
	fmt.Println(handler(result.Variables["id"].Value))
	// Output: user 42
}
