// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

// FetchJSON - fetch a JSON response from an HTTP GET request and
// decode it
func FetchJSON(client *http.Client, url string, reply interface{}) error {
	request, err := http.NewRequest("GET", url, nil)
	if nil != err {
		return err
	}
	return doJSON(client, request, url, reply)
}

// PostJSON - encode a payload, POST it and decode the JSON response
func PostJSON(client *http.Client, url string, payload interface{}, reply interface{}) error {
	body, err := json.Marshal(payload)
	if nil != err {
		return err
	}
	request, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	return doJSON(client, request, url, reply)
}

func doJSON(client *http.Client, request *http.Request, url string, reply interface{}) error {
	response, err := client.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	if http.StatusOK != response.StatusCode {
		return fmt.Errorf("status: %d %q on: %q", response.StatusCode, response.Status, url)
	}
	return json.Unmarshal(body, reply)
}
