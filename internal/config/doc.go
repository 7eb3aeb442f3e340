// Package config resolves the qqbot CLI's own settings.
//
// These are the runtime options of the command (which config file to read,
// how to format logs), not the bot configuration in qqbot.cfg, which is
// handled by package botconfig.
//
// # Sources
//
// Settings come from, in order of precedence:
//
//  1. command line flags (--config, --log-format)
//  2. QQBOT_* environment variables (QQBOT_CONFIG, QQBOT_LOG_FORMAT)
//  3. defaults
//
// Use [New] to create the Viper instance, [BindFlags] to attach the flag set,
// and [Load] to read and validate the result:
//
//	v := config.New()
//	if err := config.BindFlags(v, cmd.PersistentFlags()); err != nil {
//	    return err
//	}
//	s, err := config.Load(v)
package config
