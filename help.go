// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Wordbook %s**

A word to count dictionary backed by an AVL tree, driven by a plain text command stream.

Built with Go %s

# 1. Commands
Commands are whitespace separated tokens read from stdin, files or the *-c* flag.

* **+ word count** adds a word. Replies *OK*, or *Exist* when the word is already there
* **- word** removes a word. Replies *OK* or *NoSuchWord*
* **! Save path** writes the dictionary to a file. Replies *OK*
* **! Load path** replaces the dictionary with a saved file. Replies *OK*
* **word** looks a word up. Replies *OK: count* or *NoSuchWord*

Failures are reported as *ERROR: message* and the session carries on.

# 2. Examples
* wordbook run -c "+ apple 5 + banana 3 banana"
* wordbook run --preload words.txt commands.txt
* wordbook inspect --tree words.txt

# 3. Dump format
The word count followed by word and count pairs in ascending order, separated by spaces:

    3 apple 5 banana 3 cherry 9

# 4. Configuration
Settings live in *~/.wordbook.yaml*. Run *wordbook settings* to create and display it.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
