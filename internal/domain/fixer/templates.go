package fixer

const titleTemplate = `# Project Title

> One-liner explaining the value.
`

const badgesTemplate = `[![CI](https://img.shields.io/github/actions/workflow/status/<your-username>/<repo>/ci.yml?branch=main)](./actions)
[![npm](https://img.shields.io/npm/v/<pkg>.svg)](https://www.npmjs.com/package/<pkg>)
[![License: MIT](https://img.shields.io/badge/License-MIT-blue.svg)](LICENSE)`

const tocTemplate = `## Table of contents
- [Overview](#overview)
- [Quick start](#quick-start)
- [Usage](#usage)
- [Configuration](#configuration)
- [CI](#ci)
- [Security](#security)
- [License](#license)
- [Contributing](#contributing)`

const quickstartTemplate = "## Quick start\n```bash\nnpx your-tool init\n```\n"

const usageTemplate = "## Usage\n```bash\nyour-tool do-thing --flag value\n```"

const configTemplate = "## Configuration\nCreate `tool.config.json` and set options.\n"

const ciTemplate = "## CI\nMinimal GitHub Action:\n```yaml\nname: Tool CI\non: [push, pull_request]\njobs:\n  check:\n    runs-on: ubuntu-latest\n    steps:\n      - uses: actions/checkout@v4\n      - run: npx your-tool check\n```"

const securityTemplate = `## Security
See [SECURITY.md](SECURITY.md) for reporting vulnerabilities.`

const licenseTemplate = `## License
MIT © Your Org`

const contributingTemplate = `## Contributing
See [CONTRIBUTING.md](CONTRIBUTING.md).`

const roadmapTemplate = `## Roadmap
- [ ] Next feature
- [ ] Your idea here`

const faqTemplate = `## FAQ
**Q:** Common question?
**A:** Helpful answer.`
