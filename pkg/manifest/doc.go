// Package manifest loads element definitions from YAML and builds
// in-memory element instances from them.
//
// A manifest declares element kinds and their ingredient slots:
//
//	elements:
//	  - name: article_teaser
//	    tags: [news]
//	    ingredients:
//	      - role: title
//	        type: headline
//	        settings: {level: 2}
//	      - role: body
//	        type: richtext
//
// Instances built from definitions satisfy element.Element and are the
// concrete elements used by the preview server and tests.
package manifest
