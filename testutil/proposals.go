// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

// SampleProposalsJSON is a small feed covering every presentation state.
// SE-0500 carries errors and must never be visible.
const SampleProposalsJSON = `[
  {
    "id": "SE-0001",
    "title": "Allow (most) keywords as argument labels",
    "link": "0001-keywords-as-argument-labels.md",
    "authors": [{"name": "Doug Gregor", "link": "https://github.com/DougGregor"}],
    "reviewManager": {"name": "Joe Groff", "link": "https://github.com/jckarter"},
    "status": {"state": ".implemented", "version": "2.2"}
  },
  {
    "id": "SE-0002",
    "title": "Removing currying func declaration syntax",
    "link": "0002-remove-currying.md",
    "authors": [{"name": "Joe Groff", "link": "https://github.com/jckarter"}],
    "reviewManager": {"name": "Chris Lattner"},
    "status": {"state": ".implemented", "version": "3"}
  },
  {
    "id": "SE-0500",
    "title": "Malformed Floating Point Proposal",
    "link": "0500-malformed.md",
    "authors": [{"name": "Nobody"}],
    "status": {"state": ".implemented", "version": "5"},
    "errors": [{"kind": "error", "message": "Missing review manager.", "stage": "parse"}]
  },
  {
    "id": "SE-0067",
    "title": "Enhanced Floating Point Protocols",
    "link": "0067-floating-point-protocols.md",
    "authors": [{"name": "Stephen Canon", "link": "https://github.com/stephentyrone"}],
    "reviewManager": {"name": "Chris Lattner"},
    "status": {"state": ".implemented", "version": "3"},
    "trackingBugs": [
      {"id": "SR-1234", "link": "https://bugs.swift.org/browse/SR-1234", "status": "Resolved", "assignee": "Stephen Canon", "title": "Implement protocols"}
    ]
  },
  {
    "id": "SE-0200",
    "title": "Enhancing String Literals Delimiters to Support Raw Text",
    "link": "0200-raw-string-escaping.md",
    "authors": [{"name": "John Holdsworth", "link": "https://github.com/johnno1962"}],
    "reviewManager": {"name": "Doug Gregor"},
    "status": {"state": ".implemented", "version": "5"}
  },
  {
    "id": "SE-0230",
    "title": "Flatten nested optionals resulting from 'try?'",
    "link": "0230-flatten-optional-try.md",
    "authors": [{"name": "BJ Homer", "link": "https://github.com/bjhomer"}],
    "reviewManager": {"name": "John McCall"},
    "status": {"state": ".implemented", "version": "5"},
    "implementation": [{"account": "apple", "repository": "swift", "type": "pull", "id": "16942"}]
  },
  {
    "id": "SE-0250",
    "title": "Swift Code Style Guidelines and Formatter",
    "link": "0250-swift-style-guide-and-formatter.md",
    "authors": [{"name": "Tony Allevato", "link": "https://github.com/allevato"}],
    "reviewManager": {"name": "Ted Kremenek"},
    "status": {"state": ".returnedForRevision"}
  },
  {
    "id": "SE-0199",
    "title": "Adding toggle to Bool",
    "link": "0199-bool-toggle.md",
    "authors": [{"name": "Chris Eidhof", "link": "https://github.com/chriseidhof"}],
    "reviewManager": {"name": "Ben Cohen"},
    "status": {"state": ".implemented", "version": "4.2"}
  },
  {
    "id": "SE-0400",
    "title": "Init Accessors",
    "link": "0400-init-accessors.md",
    "authors": [{"name": "Doug Gregor", "link": "https://github.com/DougGregor"}],
    "reviewManager": {"name": "Holly Borla"},
    "status": {"state": ".activeReview", "start": "2023-06-14", "end": "2023-06-26"}
  },
  {
    "id": "SE-0401",
    "title": "Remove Actor Isolation Inference caused by Property Wrappers",
    "link": "0401-remove-property-wrapper-isolation.md",
    "authors": [{"name": "Becca Royal-Gordon", "link": "https://github.com/beccadax"}],
    "reviewManager": {"name": "John McCall"},
    "status": {"state": ".accepted"},
    "implementation": [{"account": "apple", "repository": "swift", "type": "commit", "id": "abcdef0123456789"}]
  },
  {
    "id": "SE-0402",
    "title": "Generalize conformance macros as extension macros",
    "link": "0402-extension-macros.md",
    "authors": [{"name": "Becca Royal-Gordon", "link": "https://github.com/beccadax"}],
    "reviewManager": {"name": "Holly Borla"},
    "status": {"state": ".acceptedWithRevisions"}
  },
  {
    "id": "SE-0026",
    "title": "Abstract classes and methods",
    "link": "0026-abstract-classes-and-methods.md",
    "authors": [{"name": "David Scrève", "link": "https://github.com/dsreve"}],
    "reviewManager": {"name": "Joe Groff"},
    "status": {"state": ".deferred"}
  },
  {
    "id": "SE-0009",
    "title": "Require self for accessing instance members",
    "link": "0009-require-self-for-accessing-instance-members.md",
    "authors": [{"name": "David Hart", "link": "https://github.com/hartbit"}],
    "reviewManager": {"name": "Doug Gregor"},
    "status": {"state": ".rejected"}
  },
  {
    "id": "SE-0145",
    "title": "Package Manager Version Pinning",
    "link": "0145-package-manager-version-pinning.md",
    "authors": [{"name": "Daniel Dunbar", "link": "https://github.com/ddunbar"}],
    "reviewManager": {"name": "Anders Bertelrud"},
    "status": {"state": ".withdrawn"}
  },
  {
    "id": "SE-0403",
    "title": "Package Manager Mixed Language Target Support",
    "link": "0403-swiftpm-mixed-language-targets.md",
    "authors": [{"name": "Nick Cooke", "link": "https://github.com/ncooke3"}],
    "status": {"state": ".awaitingReview"}
  },
  {
    "id": "SE-0404",
    "title": "Allow Protocols to be Nested in Non-Generic Contexts",
    "link": "0404-nested-protocols.md",
    "authors": [{"name": "Karl Wagner", "link": "https://github.com/karwa"}],
    "reviewManager": {"name": "Ben Cohen"},
    "status": {"state": ".scheduledForReview", "start": "2023-07-01", "end": "2023-07-15"}
  },
  {
    "id": "SE-0097",
    "title": "Deprecate the default keyword",
    "link": "0097-deprecate-default.md",
    "authors": [{"name": "Erica Sadun", "link": "https://github.com/erica"}],
    "reviewManager": {"name": "Chris Lattner"},
    "status": {"state": ".rejected"}
  },
  {
    "id": "SE-0413",
    "title": "Typed throws",
    "link": "0413-typed-throws.md",
    "authors": [{"name": "Jorge Revuelta", "link": "https://github.com/minuscorp"}],
    "reviewManager": {"name": "Steve Canon"},
    "status": {"state": ".implemented", "version": "Next"},
    "trackingBugs": [
      {"id": "SR-9999", "link": "https://bugs.swift.org/browse/SR-9999", "status": "Open", "assignee": "Doug Gregor"}
    ]
  }
]`

// SampleIDsDescending is the display order of the valid sample proposals.
var SampleIDsDescending = []string{
	"SE-0413", "SE-0404", "SE-0403", "SE-0402", "SE-0401", "SE-0400",
	"SE-0250", "SE-0230", "SE-0200", "SE-0199", "SE-0145", "SE-0097",
	"SE-0067", "SE-0026", "SE-0009", "SE-0002", "SE-0001",
}
