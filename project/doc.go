// Package project loads the project file: the project name, the template it
// was created from, application aliases, feature flags and the ordered list
// of CLI plugins.
//
// The file is HCL:
//
//	name     = "backend"
//	template = "@webiny/cwp-template-aws@5.32.0"
//
//	app "admin" {
//	  path = "apps/admin"
//	}
//
//	feature_flags {
//	  pb_legacy_rendering_engine = true
//	}
//
//	cli {
//	  plugins = ["workspaces", "deploy-pulumi"]
//	}
//
// Expressions may read environment variables through env, e.g. env.STAGE.
package project
