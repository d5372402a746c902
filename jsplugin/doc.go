// Package jsplugin loads custom code generators written in JavaScript.
//
// A plugin is a single script that defines a global function main. It runs
// inside an embedded QuickJS engine that has no access to the filesystem,
// the network or the host process; the only thing it sees is the JSON
// payload built from the GenerationArgs:
//
//	{
//	  "format":    {"sequence": [...]} | null,
//	  "constants": {"mod": 998244353, "yes_str": "Yes"},
//	  "config":    {"indent_type": "space", "indent_width": 4,
//	                "indent_unit": "    ", "lang": "cpp",
//	                "template": "...", "template_path": "...",
//	                "workspace_dir": "..."}
//	}
//
// main must return the generated source as a string:
//
//	function main(args) {
//	  return "// " + args.config.lang + "\n";
//	}
package jsplugin
