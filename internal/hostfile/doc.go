// Package hostfile loads host type descriptors from YAML files and
// lowers them to facet descriptors ready for composition.
//
// A host file declares one or more host types: a name, the capability
// flags to compose, declared fields in order, and an optional default
// rebuild source. Field order in the file is the declaration order of
// the composed type.
//
// # Schema Overview
//
//	version: "1"
//	hosts:
//	  - name: Person
//	    capabilities:
//	      item: true
//	      attr: true
//	      iter: true
//	      repr: true
//	    fields:
//	      - name: name
//	        value: unknown
//	      - name: age
//	        value: 0
//	    rebuild_from: type
//
// Recognized capability flags are item, attr, iter, and repr; recognized
// rebuild sources are type and instance. Validate rejects anything else
// before composition.
//
// Implements: prd007-host-descriptors R1, R2, R3.
package hostfile
