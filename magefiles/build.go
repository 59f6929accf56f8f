//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the exporter binary.
func (Build) Exporter() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/turnbake", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the whole test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Removes build artifacts and exported datasets.
func (Build) Clean() error {
	if _, err := executeCmd("rm", withArgs("-rf", "bin", "dataset"), withStream()); err != nil {
		return err
	}
	return nil
}
