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

// Package avltree implements an ordered map as an AVL tree whose nodes
// carry parent pointers, so that ordered iteration needs neither recursion
// nor an auxiliary stack.
//
// A tree is not safe for concurrent use. Any insert or remove invalidates
// iterators that are alive at the time; this is not checked at runtime.
//
// Removal relinks the in-order successor node instead of copying its key
// and value, so pointers returned by GetOrInsert for other keys remain
// valid across removals.
package avltree
