// Package hcl_adapter reads flat records from HCL files into the
// format-agnostic config.Model.
//
// A record is a labelled block. The optional `parent` attribute names the
// parent record; every other attribute becomes part of the record value:
//
//	record "2" {
//	  parent    = "1"
//	  name      = "Engineering"
//	  headcount = 12
//	}
package hcl_adapter
