package main

import (
	tapxero "github.com/sailfin-io/tap-xero"
	driver "github.com/sailfin-io/tap-xero/drivers/xero/internal"
)

func main() {
	driver := &driver.Xero{}
	tapxero.RegisterDriver(driver)
}
