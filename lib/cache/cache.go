/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/openmed-ai/species-recognition/lib"
)

// Lookup is the value we store against a text hash: the predictions a
// recogniser returned for that exact normalized text. Endpoint
// invocations are billed per request, so repeat texts are served from
// here instead.
type Lookup struct {
	Recogniser  string           `json:"recogniser"`
	Predictions []lib.Prediction `json:"predictions"`
}

// Key derives the cache key for a normalized text.
func Key(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return "prediction:" + hex.EncodeToString(sum[:])
}
