// Package botconfig reads and writes qqbot.cfg, the INI configuration file of
// the chat bot.
//
// # Reading
//
// [Read] takes a path and a [Schema] and returns a flat [Values] map keyed by
// option name. [LoadBotConfig] does the same with the shipped [BotSchema]:
//
//	values, err := botconfig.LoadBotConfig("qqbot.cfg")
//	if err != nil {
//	    var cfgErr botconfig.Error
//	    if errors.As(err, &cfgErr) {
//	        switch e := cfgErr.(type) {
//	        case *botconfig.FileNotFoundError:
//	            // e.Path
//	        case *botconfig.MissingSectionError:
//	            // e.Section
//	        case *botconfig.MissingOptionError:
//	            // e.Section, e.Option
//	        case *botconfig.InvalidSchemaTypeError:
//	            // e.Value, e.Expected
//	        }
//	    }
//	    return err
//	}
//
// Reads are all or nothing. Options missing from a section fall back to the
// DEFAULT section before being reported missing, and option names are matched
// case-insensitively.
//
// [Decode] turns the map into typed [Settings].
//
// # Writing
//
// [GenerateDefault] writes a file holding [Defaults]:
//
//	[DEFAULT]
//	chat_enabled = True
//	share_enabled = False
//	remember_enabled = True
//
//	[PERSONAL]
//	account = *
//	password = *
//
//	[CHATBOT]
//	bot_name = mtdhb
//	need_train = False
//	train_data = *
package botconfig
