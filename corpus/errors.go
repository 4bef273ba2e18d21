// Copyright 2025 Poiesic Systems
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


package corpus

import "errors"

var (
	// ErrDataSource indicates the backing corpus could not be loaded:
	// the source is missing, empty, or malformed. Loading is
	// all-or-nothing, so this error always means no records at all.
	ErrDataSource = errors.New("data source error")

	// ErrPathRequired is returned when a store is created without a path.
	ErrPathRequired = errors.New("corpus path required")
)
