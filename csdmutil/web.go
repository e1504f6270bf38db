/*
Copyright © 2019 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package csdmutil

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/ctessum/gobra"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

const guiAddress = "localhost:7272"

// configHandler reads the configuration file given in the request and
// responds with the resulting configuration values.
func configHandler(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	files := r.Form["config"]
	if len(files) == 0 {
		http.Error(w, "missing config parameter", http.StatusBadRequest)
		return
	}
	Cfg.Set("config", files[0])
	if err := setConfig(); err != nil {
		http.Error(w, err.Error(), http.StatusNoContent)
		return
	}
	config := make(map[string]interface{})
	for _, option := range options {
		config[option.name] = Cfg.Get(option.name)
	}
	e := json.NewEncoder(w)
	if err := e.Encode(config); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// StartWebServer starts a browser interface for the commands.
func StartWebServer() {
	if err := setConfig(); err != nil {
		logrus.WithError(err).Warn("ignoring configuration")
	}

	http.HandleFunc("/setConfig", configHandler)

	logrus.Info("Loading front-end...")

	for _, cmd := range []*cobra.Command{Root, versionCmd, showCmd, coordsCmd,
		convertCmd, fingerprintCmd, equalCmd} {
		cmd.SilenceUsage = true // We don't want the usage messages in the GUI.
	}

	const tmpl = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>CSDM</title>
	<style>
		html, body {padding: 0; margin: 2% 0; font-family: sans-serif;}
		.container { max-width: 700px; margin: 0 auto; padding: 10px; }
		div[id^="gobra-"] blockquote { border-left: 3px solid #bbb; margin: .3em; color: #333; padding-left: 5px; font-size: 75%; }
		div[id^="gobra-"] code { font-weight: bold; }
		div[id^="gobra-"] input { font-family: monospace; margin-left: .2em; width: 50%; outline:none; }
		.red-border{ border: 1px solid #c35; }
		.green-border{ border: 1px solid #3c5; }
	</style>
</head>
<body>
<div class="container">
	<h1>CSDM dimensions</h1>
	<p>Choose a command and the file to read below.</p>
	<div>
		{{.}}
	</div>
</div>

<script>
let allFlags = [...document.querySelectorAll('[data-name]')];
let configInput = allFlags.filter(x => x.dataset.name == "config")[0].children[0];
configInput.addEventListener("input", e => {
	fetch("http://` + guiAddress + `/setConfig?config="+configInput.value)
		.then( res => {
			if (res.status !== 200) {
				configInput.classList.remove("green-border");
				configInput.classList.add("red-border");
				return;
			}
			res.json().then( data => {
				configInput.classList.remove("red-border");
				configInput.classList.add("green-border");
				for (let key in data)
					for (let f of allFlags)
						if (f.dataset.name == key) {
							f.children[0].value = JSON.stringify(data[key]).replace(/^"+|"+$/g,'');
						}
			})
		})
		.catch( err => {
			console.log("Error fetching /setConfig", err)
		})
})
</script>
</body>
</html>`

	output := template.Must(template.New("").Parse(tmpl))
	server := gobra.Server{Root: Root, ServerAddress: guiAddress, AllowCORS: false, HTML: output}
	logrus.Info("Server starting... ")
	open.Run("http://" + guiAddress)
	fmt.Println("If not opened automatically, please visit http://" + guiAddress)
	server.Start()
}
